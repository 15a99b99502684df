package errors

import (
	stdErrors "errors"
	"net/http"
	"testing"
)

func TestMetadataFor(t *testing.T) {
	meta := MetadataFor(CodeEmptyCart)
	if meta.HTTPStatus != http.StatusConflict {
		t.Fatalf("empty cart should map to 409, got %d", meta.HTTPStatus)
	}
	if meta.Retryable {
		t.Fatal("empty cart is a precondition failure, not retryable")
	}

	if meta := MetadataFor(CodeDependency); !meta.Retryable {
		t.Fatal("dependency errors should be retryable")
	}

	if meta := MetadataFor(Code("UNKNOWN")); meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unknown codes should fall back to internal, got %d", meta.HTTPStatus)
	}
}

func TestErrorDetailsAndWrap(t *testing.T) {
	base := New(CodeValidation, "bad input")
	if base.Details() != nil {
		t.Fatal("details should be nil by default")
	}

	base.WithDetails(map[string]string{"name": "is required"})
	if base.Details() == nil {
		t.Fatal("details should be preserved")
	}

	cause := stdErrors.New("boom")
	wrapped := Wrap(CodeDependency, cause, "insert order")
	if !stdErrors.Is(wrapped, cause) {
		t.Fatal("Wrap did not preserve cause")
	}
	if wrapped.Code() != CodeDependency {
		t.Fatalf("unexpected code %s", wrapped.Code())
	}
}

func TestAsReturnsTypedError(t *testing.T) {
	err := New(CodeForbidden, "no entry")
	if got := As(err); got == nil || got.Code() != CodeForbidden {
		t.Fatal("As failed to return typed error")
	}
	if As(nil) != nil {
		t.Fatal("As(nil) should return nil")
	}
}

func TestDumpError(t *testing.T) {
	cause := stdErrors.New("socket closed")
	err := Wrap(CodeDependency, cause, "reservation insert")

	d := DumpError(err)
	if d.Code != CodeDependency {
		t.Fatalf("unexpected code %s", d.Code)
	}
	if len(d.Chain) != 2 {
		t.Fatalf("expected 2 chain entries, got %d", len(d.Chain))
	}
}
