package store

// Notice est le message utilisateur attaché au résultat d'une mutation.
// Les non-erreurs métier (déjà en wishlist, quantité ≤ 0) sont des notices
// informatives, jamais des erreurs.
type Notice struct {
	Level   string `json:"level,omitempty"`
	Message string `json:"message,omitempty"`
}

const (
	LevelSuccess = "success"
	LevelInfo    = "info"
)

func success(msg string) Notice { return Notice{Level: LevelSuccess, Message: msg} }
func info(msg string) Notice    { return Notice{Level: LevelInfo, Message: msg} }

// None : aucune notification (ex. suppression d'un article absent).
var None = Notice{}
