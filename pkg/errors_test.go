package pkg

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	simple := NewDomainErrorSimple("UNKNOWN_SERVICE_TYPE", "Tipo de servicio no válido.", KindInvalidArgument)
	if simple.Error() != "Tipo de servicio no válido." {
		t.Fatalf("unexpected message: %q", simple.Error())
	}

	wrapped := NewDomainError("INTERNAL_ERROR", "An internal error occurred", errors.New("db"), KindInternal)
	if wrapped.Error() != "An internal error occurred: db" {
		t.Fatalf("unexpected message: %q", wrapped.Error())
	}
}

func TestClassify(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		if Classify(nil) != nil {
			t.Fatalf("expected nil")
		}
	})

	t.Run("app error in chain", func(t *testing.T) {
		sentinel := NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", KindNotFound)
		got := Classify(fmt.Errorf("loading order: %w", sentinel))
		if got != sentinel {
			t.Fatalf("expected sentinel, got %+v", got)
		}
	})

	t.Run("plain error", func(t *testing.T) {
		base := errors.New("boom")
		got := Classify(base)
		if got.Kind != KindInternal || got.Code != "INTERNAL_ERROR" {
			t.Fatalf("unexpected classification: %+v", got)
		}
		if !errors.Is(got, base) {
			t.Fatalf("expected wrapped error to match base")
		}
	})
}
