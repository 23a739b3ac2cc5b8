package domain

import "testing"

func TestFilterValid(t *testing.T) {
	tests := []struct {
		filter Filter
		want   bool
	}{
		{FilterAll, true},
		{FilterActive, true},
		{FilterCompleted, true},
		{Filter(""), false},
		{Filter("done"), false},
		{Filter("ALL"), false},
	}

	for _, tt := range tests {
		if got := tt.filter.Valid(); got != tt.want {
			t.Errorf("Filter(%q).Valid() = %v, want %v", tt.filter, got, tt.want)
		}
	}
}

func TestFilterMatches(t *testing.T) {
	active := Task{ID: 1, Title: "active", Completed: false}
	done := Task{ID: 2, Title: "done", Completed: true}

	tests := []struct {
		name   string
		filter Filter
		task   Task
		want   bool
	}{
		{"all matches active", FilterAll, active, true},
		{"all matches completed", FilterAll, done, true},
		{"active matches active", FilterActive, active, true},
		{"active skips completed", FilterActive, done, false},
		{"completed matches completed", FilterCompleted, done, true},
		{"completed skips active", FilterCompleted, active, false},
		{"unknown matches nothing", Filter("bogus"), active, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(tt.task); got != tt.want {
				t.Errorf("Matches = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestThemeOpposite(t *testing.T) {
	if ThemeLight.Opposite() != ThemeDark {
		t.Error("light should flip to dark")
	}
	if ThemeDark.Opposite() != ThemeLight {
		t.Error("dark should flip to light")
	}
	if Theme("garbage").Opposite() != ThemeDark {
		t.Error("unknown theme should flip to dark")
	}
}
