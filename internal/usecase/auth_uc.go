package usecase

import "github.com/TypoMastr/bazarteuco/internal/domain"

// Credential store keys. Presence of the key id is the sole authentication
// signal; the secret is stored but never verified. This is a placeholder
// scheme, not a real credential system.
const (
	authKeyID     = "sp_key_id"
	authKeySecret = "sp_key_secret"
	defaultSecret = "mock_secret"
)

type AuthUC struct {
	Store domain.KeyValue
}

// Check reports whether a key id has been saved.
func (uc *AuthUC) Check() (bool, error) {
	_, ok, err := uc.Store.Get(authKeyID)
	return ok, err
}

// KeyID returns the stored key id, empty when none is saved.
func (uc *AuthUC) KeyID() (string, error) {
	v, _, err := uc.Store.Get(authKeyID)
	return v, err
}

func (uc *AuthUC) Save(keyID, keySecret string) error {
	if keyID == "" {
		return domain.Validationf("key id is required")
	}
	if keySecret == "" {
		keySecret = defaultSecret
	}
	if err := uc.Store.Set(authKeyID, keyID); err != nil {
		return err
	}
	return uc.Store.Set(authKeySecret, keySecret)
}

func (uc *AuthUC) Clear() error {
	if err := uc.Store.Delete(authKeyID); err != nil {
		return err
	}
	return uc.Store.Delete(authKeySecret)
}
