package usecase

import (
	"errors"
	"testing"

	"github.com/TypoMastr/bazarteuco/internal/adapters/kvstore"
	"github.com/TypoMastr/bazarteuco/internal/domain"
)

func TestAuthLifecycle(t *testing.T) {
	uc := &AuthUC{Store: kvstore.NewMemory()}

	ok, err := uc.Check()
	if err != nil || ok {
		t.Fatalf("fresh store: ok=%v err=%v", ok, err)
	}

	if err := uc.Save("admin", "s3cret"); err != nil {
		t.Fatalf("save: %v", err)
	}
	ok, err = uc.Check()
	if err != nil || !ok {
		t.Fatalf("after save: ok=%v err=%v", ok, err)
	}
	id, err := uc.KeyID()
	if err != nil || id != "admin" {
		t.Fatalf("key id: %q, %v", id, err)
	}

	if err := uc.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	ok, _ = uc.Check()
	if ok {
		t.Fatalf("still authenticated after clear")
	}
}

func TestAuthSaveRequiresKeyID(t *testing.T) {
	uc := &AuthUC{Store: kvstore.NewMemory()}
	if err := uc.Save("", "x"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("got %v, want validation error", err)
	}
}

func TestAuthSecretDefaultsToPlaceholder(t *testing.T) {
	store := kvstore.NewMemory()
	uc := &AuthUC{Store: store}
	if err := uc.Save("admin", ""); err != nil {
		t.Fatalf("save: %v", err)
	}
	v, ok, _ := store.Get(authKeySecret)
	if !ok || v != defaultSecret {
		t.Fatalf("secret: %q ok=%v", v, ok)
	}
}
