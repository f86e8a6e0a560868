package rafters

import (
	"testing"
)

func TestSettingsTokenRebuildsComponent(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder() error = %v", err)
	}

	card := newWidgetCard(Settings{"title": "Hi", "color": "blue", "size": 3})
	token, err := EncodeSettings(enc, card.RawSettings(), false)
	if err != nil {
		t.Fatalf("EncodeSettings() error = %v", err)
	}

	raw, err := DecodeSettings(enc, token, false)
	if err != nil {
		t.Fatalf("DecodeSettings() error = %v", err)
	}

	got, err := newWidgetCard(raw).Settings()
	if err != nil {
		t.Fatalf("Settings() error = %v", err)
	}
	if got["title"] != "Hi" || got["color"] != "blue" || !sameValue(got["size"], 3) {
		t.Errorf("Settings() = %#v", got)
	}
}

func TestDecodeSettings_Accepts(t *testing.T) {
	type c struct{ *Component[*c] }
	def := Define[*c]().Setting("cols", SettingOptions{Accepts: []any{1, 2, 3}})
	enc, _ := NewEncoder([]byte("test-key"))

	token, err := EncodeSettings(enc, Settings{"cols": 2}, true)
	if err != nil {
		t.Fatalf("EncodeSettings() error = %v", err)
	}
	raw, err := DecodeSettings(enc, token, true)
	if err != nil {
		t.Fatalf("DecodeSettings() error = %v", err)
	}

	inst := &c{}
	inst.Component = def.New(inst, raw)
	if _, err := inst.Settings(); err != nil {
		t.Errorf("Settings() error = %v, decoded int64 should match int accepts", err)
	}
}

func TestDecodeSettings_Errors(t *testing.T) {
	enc, _ := NewEncoder([]byte("test-key"))
	other, _ := NewEncoder([]byte("other-key"))

	signed, _ := EncodeSettings(other, Settings{"a": 1}, false)
	sealed, _ := EncodeSettings(other, Settings{"a": 1}, true)

	tests := []struct {
		name      string
		token     string
		sensitive bool
		want      error
	}{
		{"bad format", "nodot", false, ErrInvalidFormat},
		{"wrong key signed", signed, false, ErrSignatureInvalid},
		{"wrong key sealed", sealed, true, ErrDecryptFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSettings(enc, tt.token, tt.sensitive)
			if err != tt.want {
				t.Errorf("DecodeSettings() error = %v, want %v", err, tt.want)
			}
		})
	}
}
