package services

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"ornella_back_end/internal/database"
)

// ImageOrigin retourne l'origine fixe du serveur d'images : les chemins
// relatifs du catalogue y sont joints, les URLs absolues passent inchangées.
func ImageOrigin() string {
	scheme := "http"
	if os.Getenv("MINIO_USE_SSL") == "true" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s", scheme, os.Getenv("MINIO_ENDPOINT"), os.Getenv("MINIO_BUCKET"))
}

// GenerateSignedURL génère une URL GET présignée pour un objet du bucket
// images, avec durée d'expiration.
func GenerateSignedURL(ctx context.Context, objectPath string, duration time.Duration) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	bucket := os.Getenv("MINIO_BUCKET")

	// Ne garde que le chemin relatif au bucket si une URL complète est passée
	key := objectPath
	if strings.HasPrefix(key, "http") {
		if u, err := url.Parse(key); err == nil {
			key = strings.TrimPrefix(u.Path, "/"+bucket+"/")
		}
	}
	key = strings.TrimPrefix(key, "/")

	presignedURL, err := database.MinIO.PresignedGetObject(ctx, bucket, key, duration, url.Values{})
	if err != nil {
		return "", err
	}

	return presignedURL.String(), nil
}
