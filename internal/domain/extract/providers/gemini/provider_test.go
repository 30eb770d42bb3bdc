package gemini

import "testing"

func TestNewProviderRequiresClient(t *testing.T) {
	if _, err := NewProvider(nil); err == nil {
		t.Fatal("expected an error for a nil client")
	}
}
