package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"gocloud.dev/secrets"

	"github.com/allisson/quiz/internal/config"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// LoadSigningKey returns the token signing key. Without keeperURI, secret is
// the key itself. With keeperURI (gcpkms://, awskms://, azurekeyvault://,
// hashivault://, base64key://), secret is the standard base64 ciphertext of
// the key and is decrypted through the keeper once, at startup.
func LoadSigningKey(ctx context.Context, secret, keeperURI string) ([]byte, error) {
	key := []byte(secret)

	if keeperURI != "" {
		ciphertext, err := base64.StdEncoding.DecodeString(secret)
		if err != nil {
			return nil, fmt.Errorf("token secret ciphertext is not valid base64: %w", err)
		}

		keeper, err := secrets.OpenKeeper(ctx, keeperURI)
		if err != nil {
			return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
		}
		defer func() {
			_ = keeper.Close()
		}()

		key, err = keeper.Decrypt(ctx, ciphertext)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt token secret: %w", err)
		}
	}

	if len(key) < config.MinTokenSecretLength {
		return nil, fmt.Errorf("token signing key must be at least %d bytes", config.MinTokenSecretLength)
	}
	return key, nil
}
