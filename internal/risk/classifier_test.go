package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want Tier
	}{
		{"AdministratorAccess", TierHigh},
		{"AmazonS3FullAccess", TierHigh},
		{"PowerUserAccess", TierMedium},
		{"AmazonEC2ReadWriteAccess", TierMedium},
		{"ReadOnlyAccess", TierLow},
		{"SomethingElse", TierLow},
		{"", TierLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.name))
		})
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	assert.Equal(t, TierHigh, Classify("administratoraccess"))
	assert.Equal(t, TierHigh, Classify("ADMINISTRATORACCESS"))
	assert.Equal(t, TierMedium, Classify("PoWeRuSeR"))
}

func TestClassifyFirstMatchWins(t *testing.T) {
	// A name matching both the HIGH and MEDIUM rules classifies HIGH.
	assert.Equal(t, TierHigh, Classify("FullAccessWithWrite"))
	// readonly loses to write when both substrings appear.
	assert.Equal(t, TierMedium, Classify("ReadOnlyWriteHybrid"))
}
