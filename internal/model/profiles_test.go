package model

import "testing"

func TestAllProfilesIncludesBuiltInAndCustom(t *testing.T) {
	CustomProfiles = nil
	defer func() { CustomProfiles = nil }()

	builtIn := len(GCodeProfiles)
	if got := len(AllProfiles()); got != builtIn {
		t.Errorf("expected %d profiles with no custom, got %d", builtIn, got)
	}

	CustomProfiles = []GCodeProfile{{Name: "Boring head"}}
	if got := len(AllProfiles()); got != builtIn+1 {
		t.Errorf("expected %d profiles with 1 custom, got %d", builtIn+1, got)
	}
}

func TestGetProfileFindsCustom(t *testing.T) {
	CustomProfiles = []GCodeProfile{{Name: "Boring head", RapidMove: "G0", FeedMove: "G1"}}
	defer func() { CustomProfiles = nil }()

	if p := GetProfile("Boring head"); p.Name != "Boring head" {
		t.Errorf("expected custom profile, got %s", p.Name)
	}
}

func TestGetProfileFallsBackToGeneric(t *testing.T) {
	if p := GetProfile("NonExistent"); p.Name != "Generic" {
		t.Errorf("expected Generic fallback, got %s", p.Name)
	}
}

func TestAddCustomProfileRejectsBuiltInName(t *testing.T) {
	CustomProfiles = nil
	defer func() { CustomProfiles = nil }()

	if err := AddCustomProfile(GCodeProfile{Name: "Grbl"}); err == nil {
		t.Fatal("expected error when adding profile with built-in name")
	}
}

func TestAddCustomProfileUpdatesExisting(t *testing.T) {
	CustomProfiles = nil
	defer func() { CustomProfiles = nil }()

	_ = AddCustomProfile(GCodeProfile{Name: "Drill", Description: "v1"})
	_ = AddCustomProfile(GCodeProfile{Name: "Drill", Description: "v2"})

	if len(CustomProfiles) != 1 {
		t.Fatalf("expected 1 custom profile after update, got %d", len(CustomProfiles))
	}
	if CustomProfiles[0].Description != "v2" {
		t.Errorf("expected updated description, got %s", CustomProfiles[0].Description)
	}
}

func TestRemoveCustomProfile(t *testing.T) {
	CustomProfiles = []GCodeProfile{{Name: "Drill"}}
	defer func() { CustomProfiles = nil }()

	if err := RemoveCustomProfile("Drill"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(CustomProfiles) != 0 {
		t.Error("profile was not removed")
	}
	if err := RemoveCustomProfile("Drill"); err == nil {
		t.Error("expected error for missing profile")
	}
	if err := RemoveCustomProfile("Grbl"); err == nil {
		t.Error("expected error when removing built-in profile")
	}
}

func TestNewCustomProfileCopiesGeneric(t *testing.T) {
	p := NewCustomProfile("Shop")
	if p.IsBuiltIn {
		t.Error("custom profile should not be built-in")
	}
	if p.RapidMove != "G0" {
		t.Errorf("expected G0 rapid move from Generic, got %s", p.RapidMove)
	}
	p.StartCode[0] = "G91"
	if GCodeProfiles[len(GCodeProfiles)-1].StartCode[0] != "G90" {
		t.Error("custom profile must not alias the Generic start code")
	}
}

func TestBuiltInProfilesMarkedCorrectly(t *testing.T) {
	for _, p := range GCodeProfiles {
		if !p.IsBuiltIn {
			t.Errorf("built-in profile %s should have IsBuiltIn=true", p.Name)
		}
	}
}
