package apierr

import (
	"errors"
	"net/http"
	"testing"
)

func TestInvalidArgument_CarriesStatusCodeAndCause(t *testing.T) {
	cause := errors.New("phone must be exactly 10 digits")
	apiErr := InvalidArgument(cause)

	if apiErr.Status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", apiErr.Status)
	}
	if apiErr.Code != CodeInvalidArgument {
		t.Fatalf("expected %q, got %q", CodeInvalidArgument, apiErr.Code)
	}
	if !errors.Is(apiErr, cause) {
		t.Fatalf("expected the cause to survive unwrapping")
	}
	if apiErr.Error() != cause.Error() {
		t.Fatalf("expected message %q, got %q", cause.Error(), apiErr.Error())
	}
}

func TestInternal_MapsTo500(t *testing.T) {
	apiErr := Internal(errors.New("connection reset"))
	if apiErr.Status != http.StatusInternalServerError || apiErr.Code != CodeInternal {
		t.Fatalf("unexpected mapping: %d %q", apiErr.Status, apiErr.Code)
	}
}

func TestError_FallsBackToCodeThenStatus(t *testing.T) {
	if msg := New(http.StatusConflict, CodeDuplicateID, nil).Error(); msg != CodeDuplicateID {
		t.Fatalf("expected code fallback, got %q", msg)
	}
	if msg := New(http.StatusConflict, "", nil).Error(); msg != "api error (409)" {
		t.Fatalf("expected status fallback, got %q", msg)
	}
}
