package rafters

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for component operations.
var (
	ErrSettingRequired  = errors.New("rafters: setting required")
	ErrInvalidSetting   = errors.New("rafters: invalid setting")
	ErrCurrentMissing   = errors.New("rafters: current value missing")
	ErrUnknownSetting   = errors.New("rafters: unknown setting")
	ErrViewNotFound     = errors.New("rafters: view not found")
	ErrDecryptFailed    = errors.New("rafters: settings decryption failed")
	ErrSignatureInvalid = errors.New("rafters: signature verification failed")
	ErrInvalidFormat    = errors.New("rafters: invalid settings format")
)

// SettingRequiredError reports a required setting that resolved to nil after
// its default was applied.
type SettingRequiredError struct {
	Component string
	Setting   string
}

func (e *SettingRequiredError) Error() string {
	return fmt.Sprintf("rafters: %s: %s is required but not provided", e.Component, e.Setting)
}

// Is matches ErrSettingRequired.
func (e *SettingRequiredError) Is(target error) bool {
	return target == ErrSettingRequired
}

// InvalidSettingError reports a resolved setting value that is not a member
// of the setting's Accepts list. Defaulted values are checked too.
type InvalidSettingError struct {
	Component string
	Setting   string
	Value     any
	Accepts   []any
}

func (e *InvalidSettingError) Error() string {
	accepts := make([]string, len(e.Accepts))
	for i, a := range e.Accepts {
		accepts[i] = fmt.Sprint(a)
	}
	return fmt.Sprintf("rafters: %s: %v is not a valid value for %s. Accepts: %s",
		e.Component, e.Value, e.Setting, strings.Join(accepts, ", "))
}

// Is matches ErrInvalidSetting.
func (e *InvalidSettingError) Is(target error) bool {
	return target == ErrInvalidSetting
}

// CurrentMissingError reports a Current lookup the controller could not
// satisfy. Controller is the controller's type, or "<nil>" when no controller
// was attached.
type CurrentMissingError struct {
	Name       string
	Controller string
}

func (e *CurrentMissingError) Error() string {
	return fmt.Sprintf("rafters: %s not found in %s", e.Name, e.Controller)
}

// Is matches ErrCurrentMissing.
func (e *CurrentMissingError) Is(target error) bool {
	return target == ErrCurrentMissing
}

// UnknownSettingError reports a Setting call for a name the component never
// declared.
type UnknownSettingError struct {
	Component string
	Setting   string
}

func (e *UnknownSettingError) Error() string {
	return fmt.Sprintf("rafters: %s: %s is not a declared setting", e.Component, e.Setting)
}

// Is matches ErrUnknownSetting.
func (e *UnknownSettingError) Is(target error) bool {
	return target == ErrUnknownSetting
}

// IsSettingRequired checks if err is a missing required setting.
func IsSettingRequired(err error) bool {
	return errors.Is(err, ErrSettingRequired)
}

// IsInvalidSetting checks if err is a setting rejected by its Accepts list.
func IsInvalidSetting(err error) bool {
	return errors.Is(err, ErrInvalidSetting)
}

// IsCurrentMissing checks if err is a failed Current lookup.
func IsCurrentMissing(err error) bool {
	return errors.Is(err, ErrCurrentMissing)
}

// IsUnknownSetting checks if err is a lookup of an undeclared setting.
func IsUnknownSetting(err error) bool {
	return errors.Is(err, ErrUnknownSetting)
}

// IsViewNotFound checks if err is a missing view.
func IsViewNotFound(err error) bool {
	return errors.Is(err, ErrViewNotFound)
}

// IsDecryptionError checks if err is a decryption or signature error.
func IsDecryptionError(err error) bool {
	return errors.Is(err, ErrDecryptFailed) || errors.Is(err, ErrSignatureInvalid)
}
