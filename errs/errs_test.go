package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validationf("cart is empty"), http.StatusBadRequest},
		{Authf("wrong code"), http.StatusUnauthorized},
		{NotFoundf("order %s not found", "o1"), http.StatusNotFound},
		{Conflictf("cannot go from ready to pending"), http.StatusConflict},
		{Transport("db unreachable", errors.New("dial tcp")), http.StatusServiceUnavailable},
		{errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range cases {
		if got := HTTPStatus(tt.err); got != tt.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestWrappedErrorsKeepKind(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", Conflictf("bad transition"))
	if HTTPStatus(wrapped) != http.StatusConflict {
		t.Fatal("wrapping lost the conflict kind")
	}
	if !IsKind(wrapped, KindConflict) {
		t.Fatal("IsKind failed on wrapped error")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := Transport("store unreachable", cause)
	if !errors.Is(err, cause) {
		t.Fatal("cause not reachable via errors.Is")
	}
}
