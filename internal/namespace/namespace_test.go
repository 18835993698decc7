package namespace

import (
	"errors"
	"reflect"
	"testing"
)

func TestInitializeNilAppliesDefaults(t *testing.T) {
	t.Parallel()

	got := Initialize(nil)

	want := Namespace{
		"apiCoreAdminUrl":   "",
		"apiAiMentorUrl":    "",
		"apiCurriculumUrl":  "",
		"apiCieUrl":         "",
		"apiMathUrl":        "",
		"apiPhysicsUrl":     "",
		"apiChemistryUrl":   "",
		"apiSquadUrl":       "",
		"firebaseProjectId": "octo-education-ddc76",
		"environment":       "production",
		"appVersion":        "1.0.0",
		"enableAnalytics":   true,
		"debug":             false,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestInitializeEmptyNamespace(t *testing.T) {
	t.Parallel()

	ns := Namespace{}
	got := Initialize(ns)

	if len(got) != 13 {
		t.Fatalf("expected 13 keys, got %d", len(got))
	}
	if len(ns) != 13 {
		t.Fatalf("expected namespace to be updated in place")
	}
}

func TestInitializeIsIdempotent(t *testing.T) {
	t.Parallel()

	first := Initialize(nil).Clone()
	second := Initialize(Initialize(nil))

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical namespaces, got %v and %v", first, second)
	}
}

func TestInitializePreservesExistingValues(t *testing.T) {
	t.Parallel()

	ns := Initialize(Namespace{KeyAPICoreAdminURL: "https://x", KeyDebug: true})

	if ns[KeyAPICoreAdminURL] != "https://x" {
		t.Fatalf("expected pre-seeded value to survive, got %v", ns[KeyAPICoreAdminURL])
	}
	if ns[KeyDebug] != true {
		t.Fatalf("expected pre-seeded debug to survive, got %v", ns[KeyDebug])
	}
	if ns[KeyEnvironment] != "production" {
		t.Fatalf("expected default environment, got %v", ns[KeyEnvironment])
	}
}

func TestInitializePreservesNilValue(t *testing.T) {
	t.Parallel()

	ns := Initialize(Namespace{KeyAppVersion: nil})
	if v, ok := ns[KeyAppVersion]; !ok || v != nil {
		t.Fatalf("expected present key to be left alone, got %v", v)
	}
}

func TestInitializeKeepsUnknownKeys(t *testing.T) {
	t.Parallel()

	ns := Initialize(Namespace{"foo": "bar"})
	if ns["foo"] != "bar" {
		t.Fatalf("expected unknown key to pass through, got %v", ns["foo"])
	}
	if len(ns) != 14 {
		t.Fatalf("expected 14 keys, got %d", len(ns))
	}
}

func TestInitializeBooleanTypes(t *testing.T) {
	t.Parallel()

	ns := Initialize(nil)
	for _, key := range []string{KeyEnableAnalytics, KeyDebug} {
		if _, ok := ns[key].(bool); !ok {
			t.Fatalf("expected %s to be a bool, got %T", key, ns[key])
		}
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	if err := Defaults().Validate(); err != nil {
		t.Fatalf("unexpected error for defaults: %v", err)
	}

	cases := []Namespace{
		{KeyEnableAnalytics: "true"},
		{KeyDebug: 1},
		{KeyAPIMathURL: false},
	}
	for _, tc := range cases {
		if err := tc.Validate(); !errors.Is(err, ErrInvalidValue) {
			t.Fatalf("expected ErrInvalidValue for %v, got %v", tc, err)
		}
	}

	if err := (Namespace{"foo": 42}).Validate(); err != nil {
		t.Fatalf("unknown keys should not be validated: %v", err)
	}
}

func TestMergeAndClone(t *testing.T) {
	t.Parallel()

	base := Defaults()
	clone := base.Clone()
	clone.Merge(Namespace{KeyEnvironment: "staging", "extra": "x"})

	if base[KeyEnvironment] != "production" {
		t.Fatalf("expected clone to be independent of source")
	}
	if clone[KeyEnvironment] != "staging" || clone["extra"] != "x" {
		t.Fatalf("expected merge to overwrite, got %v", clone)
	}
}

func TestKeysOrdering(t *testing.T) {
	t.Parallel()

	ns := Initialize(Namespace{"zeta": 1, "alpha": 2})
	keys := ns.Keys()

	if keys[0] != KeyAPICoreAdminURL || keys[12] != KeyDebug {
		t.Fatalf("expected recognized keys first in declaration order, got %v", keys)
	}
	if keys[13] != "alpha" || keys[14] != "zeta" {
		t.Fatalf("expected unknown keys sorted last, got %v", keys)
	}
}

func TestCoerce(t *testing.T) {
	t.Parallel()

	analytics, _ := Lookup(KeyEnableAnalytics)
	v, err := Coerce(analytics, " false ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != false {
		t.Fatalf("expected false, got %v", v)
	}

	if _, err := Coerce(analytics, "maybe"); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}

	url, _ := Lookup(KeyAPISquadURL)
	v, err = Coerce(url, "https://squad")
	if err != nil || v != "https://squad" {
		t.Fatalf("expected string passthrough, got %v (%v)", v, err)
	}
}

func TestFieldsTable(t *testing.T) {
	t.Parallel()

	all := Fields()
	if len(all) != 13 {
		t.Fatalf("expected 13 fields, got %d", len(all))
	}
	all[0].Key = "mutated"
	if Fields()[0].Key != KeyAPICoreAdminURL {
		t.Fatalf("expected Fields to return a copy")
	}
	if _, ok := Lookup("foo"); ok {
		t.Fatalf("expected foo to be unrecognized")
	}
}
