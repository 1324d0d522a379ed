package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// Mesmo comprimento dos ids gerados pelo Firestore
	documentIDLength = 20
)

// GenerateID gera um id opaco de documento
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, documentIDLength)
}
