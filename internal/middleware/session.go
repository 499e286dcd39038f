package middleware

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionName   = "ornella_session"
	clientIDKey   = "client_id"
	sessionMaxAge = 86400 * 30 // même durée de vie que les blobs Redis
)

var sessionStore *sessions.CookieStore

// InitSessionStore configure le cookie store des sessions invité.
func InitSessionStore() {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Fatal("❌ SESSION_SECRET manquant dans .env")
	}

	sessionStore = sessions.NewCookieStore([]byte(secret))
	sessionStore.MaxAge(sessionMaxAge)
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}
	log.Println("✅ Session store initialisé")
}

// ClientSession attribue un identifiant stable au profil navigateur : c'est la
// clé des blobs panier/wishlist, qui survivent navigation et rechargements.
func ClientSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := sessionStore.Get(c.Request, sessionName)
		if err != nil {
			// Cookie corrompu : on repart sur une session neuve
			session, _ = sessionStore.New(c.Request, sessionName)
		}

		clientID, ok := session.Values[clientIDKey].(string)
		if !ok || clientID == "" {
			clientID = uuid.NewString()
			session.Values[clientIDKey] = clientID
			if err := session.Save(c.Request, c.Writer); err != nil {
				log.Printf("⚠️ Impossible d'écrire le cookie de session: %v", err)
			}
		}

		c.Set(clientIDKey, clientID)
		c.Next()
	}
}
