package middlewares

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"os"

	"github.com/gofiber/fiber/v2"

	"junket/helpers"
)

// AdminAuth verifies the HMAC signature of the master operator account.
// The signature is HMAC-SHA256 over code+secret, keyed with the secret.
func AdminAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		signature := c.Get("X-Admin-Signature")
		if signature == "" {
			var body struct {
				Signature string `json:"signature"`
			}
			if err := c.BodyParser(&body); err == nil {
				signature = body.Signature
			}
		}

		masterCode := os.Getenv("MASTER_ADMIN_CODE")
		masterSecret := os.Getenv("MASTER_ADMIN_SECRET")

		h := hmac.New(sha256.New, []byte(masterSecret))
		h.Write([]byte(masterCode + masterSecret))
		expected := hex.EncodeToString(h.Sum(nil))

		if signature == "" || !hmac.Equal([]byte(signature), []byte(expected)) {
			return helpers.JSONUnauthorized(c, "INVALID_SIGNATURE")
		}

		return c.Next()
	}
}
