package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rotenkr/roten-api/internal/apperr"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("잘못된 ID 형식입니다")

	if err.Error() != "잘못된 ID 형식입니다" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewUpstreamWrap(t *testing.T) {
	inner := fmt.Errorf("connection refused")
	err := apperr.NewUpstream("data store unavailable", inner)

	if err.Error() != "data store unavailable: connection refused" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestNewNotFoundWrap(t *testing.T) {
	inner := fmt.Errorf("no row with id biz_999")
	err := apperr.NewNotFoundWrap("데이터를 찾을 수 없습니다", inner)

	if err.Error() != "데이터를 찾을 수 없습니다: no row with id biz_999" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestNotFound_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewNotFound("데이터를 찾을 수 없습니다")

	wrapped := fmt.Errorf("lookup failed: %w", original)
	doubleWrapped := fmt.Errorf("handler error: %w", wrapped)

	var nf *apperr.NotFoundError
	if !errors.As(doubleWrapped, &nf) {
		t.Fatal("errors.As should find NotFoundError through double wrapping")
	}
	if nf.Message != "데이터를 찾을 수 없습니다" {
		t.Errorf("unexpected message %q", nf.Message)
	}
}

func TestTypedErrors_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("database connection failed")
	wrapped := fmt.Errorf("fetch error: %w", plain)

	var ve *apperr.ValidationError
	if errors.As(wrapped, &ve) {
		t.Fatal("errors.As should NOT find ValidationError in plain error chain")
	}
	var nf *apperr.NotFoundError
	if errors.As(wrapped, &nf) {
		t.Fatal("errors.As should NOT find NotFoundError in plain error chain")
	}
}
