package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tagmate/tagmate/completion/models"
)

func charTrigger(c string) models.Trigger {
	return models.Trigger{Kind: models.TriggerCharacter, Character: c}
}

func TestClassify_CharacterTriggers(t *testing.T) {
	tests := []struct {
		line    string
		trigger string
		want    Kind
	}{
		{"  ", "<", KindElement},
		{"<catalog", "<", KindElement},
		{"  <book", " ", KindAttribute},
		{"  <", "/", KindClosingElement},
		{"  <book", "a", KindNone},
		{"  <book", ">", KindNone},
	}

	for _, tt := range tests {
		got := Classify(tt.line, charTrigger(tt.trigger))
		assert.Equal(t, tt.want, got, "line %q trigger %q", tt.line, tt.trigger)
	}
}

func TestClassify_SuppressedInsideOpenAttributeValue(t *testing.T) {
	line := `status="open tag <b>`

	for _, trigger := range []models.Trigger{
		charTrigger("<"),
		charTrigger(" "),
		charTrigger("/"),
		{Kind: models.TriggerInvoked},
		{Kind: models.TriggerIncomplete},
	} {
		assert.Equal(t, KindNone, Classify(line, trigger))
	}
}

func TestClassify_InvokedDispatch(t *testing.T) {
	invoked := models.Trigger{Kind: models.TriggerInvoked}

	assert.Equal(t, KindIncompleteElement, Classify("  <boo", invoked))
	assert.Equal(t, KindIncompleteAttribute, Classify("  <book titl", invoked))
	assert.Equal(t, KindIncompleteAttribute, Classify(`  <book id="1" gen`, invoked))
	assert.Equal(t, KindSnippet, Classify("plain text", invoked))
	assert.Equal(t, KindSnippet, Classify("", invoked))
}

func TestClassify_IncompleteListContinuation(t *testing.T) {
	incomplete := models.Trigger{Kind: models.TriggerIncomplete}

	assert.Equal(t, KindIncompleteElement, Classify("<bk:bo", incomplete))
	assert.Equal(t, KindIncompleteAttribute, Classify("<bk:book at", incomplete))
}

func TestClassify_Deterministic(t *testing.T) {
	invoked := models.Trigger{Kind: models.TriggerInvoked}
	first := Classify("  <book titl", invoked)
	second := Classify("  <book titl", invoked)
	assert.Equal(t, first, second)
}
