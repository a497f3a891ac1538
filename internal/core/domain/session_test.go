package domain

import (
	"errors"
	"testing"
)

func TestSession_FieldsRoundTrip(t *testing.T) {
	s := SessionFromUser(User{ID: "u1", Email: "a@b.com", Username: "ann", Description: "hi", Password: "x"})
	fields := s.Fields()
	if fields[FieldLoggedIn] != "true" {
		t.Fatalf("expected isLoggedIn=true, got %q", fields[FieldLoggedIn])
	}

	loaded := LoadSession(func(f string) (string, bool) {
		v, ok := fields[f]
		return v, ok
	})
	if loaded != s {
		t.Fatalf("round trip mismatch: %+v vs %+v", loaded, s)
	}
	if !loaded.Complete() || loaded.Empty() {
		t.Fatalf("expected complete session: %+v", loaded)
	}
}

func TestSession_Incomplete(t *testing.T) {
	s := Session{UserID: "u1"}
	if s.Complete() {
		t.Fatal("session without email/username must be incomplete")
	}
	if s.Empty() {
		t.Fatal("session with id is not empty")
	}
	if !(Session{}).Empty() {
		t.Fatal("zero session must be empty")
	}
}

func TestValidateCredentials(t *testing.T) {
	if err := ValidateCredentials("a@b.com", "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var ve *ValidationError
	if err := ValidateCredentials("", "x"); !errors.As(err, &ve) || ve.Field != "email" {
		t.Fatalf("expected email validation error, got %v", err)
	}
	if err := ValidateCredentials("ann", "x"); err != nil {
		t.Fatalf("non-empty email must reach the server unchanged, got %v", err)
	}
	if err := ValidateCredentials("a@b.com", ""); !errors.As(err, &ve) || ve.Field != "password" {
		t.Fatalf("expected password validation error, got %v", err)
	}
}

func TestAsError_UniformWrapping(t *testing.T) {
	cause := &APIError{StatusCode: 404, Message: "user not found"}
	err := AsError(cause)

	var de *Error
	if !errors.As(err, &de) {
		t.Fatalf("expected *Error, got %T", err)
	}
	var api *APIError
	if !errors.As(err, &api) || api.StatusCode != 404 {
		t.Fatalf("cause not reachable: %v", err)
	}
	if AsError(err) != err {
		t.Fatal("AsError must not double-wrap")
	}
	if AsError(nil) != nil {
		t.Fatal("nil must stay nil")
	}
	if Message(err) != "server returned status 404: user not found" {
		t.Fatalf("unexpected message: %q", Message(err))
	}
}
