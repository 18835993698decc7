package namespace

import (
	"errors"
	"reflect"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	s := DefaultSettings()
	if s.FirebaseProjectID != "octo-education-ddc76" || s.Environment != "production" || s.AppVersion != "1.0.0" {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if !s.EnableAnalytics || s.Debug {
		t.Fatalf("unexpected flag defaults: %+v", s)
	}
	if s.APICoreAdminURL != "" {
		t.Fatalf("expected empty API URL, got %q", s.APICoreAdminURL)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	ns := Initialize(Namespace{KeyAPICieURL: "https://cie", KeyDebug: true})
	s, err := Decode(ns)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if s.APICieURL != "https://cie" || !s.Debug {
		t.Fatalf("unexpected settings: %+v", s)
	}
	if !reflect.DeepEqual(s.Namespace(), ns) {
		t.Fatalf("expected round trip to preserve namespace")
	}
}

func TestDecodeRejectsWrongKinds(t *testing.T) {
	t.Parallel()

	if _, err := Decode(Namespace{KeyEnableAnalytics: "yes"}); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}

func TestDecodeDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	ns := Namespace{KeyEnvironment: "dev"}
	if _, err := Decode(ns); err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(ns) != 1 {
		t.Fatalf("expected input to remain untouched, got %v", ns)
	}
}
