package nlu_test

import (
	"reflect"
	"testing"

	"personal-assistant/internal/nlu"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []nlu.IntentTag
	}{
		{
			name: "Add task",
			text: "add task buy groceries",
			want: []nlu.IntentTag{nlu.IntentTaskManagement},
		},
		{
			name: "Pure conversation",
			text: "hello there, how are you",
			want: []nlu.IntentTag{nlu.IntentConversation},
		},
		{
			name: "Unmatched text falls back to conversation",
			text: "qwerty zxcvb",
			want: []nlu.IntentTag{nlu.IntentConversation},
		},
		{
			name: "Dollar amount alone is budget",
			text: "$50 went missing",
			want: []nlu.IntentTag{nlu.IntentBudgetManagement},
		},
		{
			name: "Multi intent keeps declaration order",
			text: "create task pay rent and log expense $800",
			want: []nlu.IntentTag{nlu.IntentTaskManagement, nlu.IntentBudgetManagement},
		},
		{
			name: "Schedule phrasing",
			text: "book a meeting tomorrow at 3pm",
			want: []nlu.IntentTag{nlu.IntentScheduleManagement},
		},
		{
			name: "Information query",
			text: "give me a status report",
			want: []nlu.IntentTag{nlu.IntentInformationQuery},
		},
		{
			name: "Explicit greeting plus question",
			text: "hi, what can you do",
			want: []nlu.IntentTag{nlu.IntentInformationQuery, nlu.IntentConversation},
		},
		{
			name: "Uppercase input is lowered first",
			text: "ADD TASK CALL MOM",
			want: []nlu.IntentTag{nlu.IntentTaskManagement},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nlu.Classify(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyNeverEmpty(t *testing.T) {
	for _, text := range []string{"", "   ", "؟؟؟", "12345"} {
		got := nlu.Classify(text)
		if len(got) == 0 {
			t.Errorf("Classify(%q) returned an empty slice", text)
		}
	}
}
