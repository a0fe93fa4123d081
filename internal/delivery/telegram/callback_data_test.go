package telegram

import "testing"

func TestCallbackData_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		action string
		ints   []int
	}{
		{name: "start", data: buildStartCallback(), action: actionStart},
		{name: "level", data: buildLevelCallback(42), action: actionLevel, ints: []int{42}},
		{name: "page", data: buildPageCallback(3), action: actionPage, ints: []int{3}},
		{name: "answer", data: buildAnswerCallback(7, 2), action: actionAnswer, ints: []int{7, 2}},
		{name: "list", data: buildListCallback(), action: actionList},
		{name: "retry", data: buildRetryCallback(), action: actionRetry},
		{name: "next", data: buildNextCallback(), action: actionNext},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.data) > 64 {
				t.Fatalf("callback data %q exceeds the Telegram limit", tt.data)
			}

			cd := decodeCallback(tt.data)
			if cd.Action != tt.action {
				t.Errorf("action = %q, want %q", cd.Action, tt.action)
			}
			for i, want := range tt.ints {
				got, ok := cd.intParam(i)
				if !ok || got != want {
					t.Errorf("param %d = %d (%v), want %d", i, got, ok, want)
				}
			}
			if _, ok := cd.intParam(len(tt.ints)); ok {
				t.Error("expected no extra parameter")
			}
		})
	}
}

func TestCallbackData_InvalidParam(t *testing.T) {
	cd := decodeCallback("lvl:abc")
	if _, ok := cd.intParam(0); ok {
		t.Error("expected non-numeric parameter to be rejected")
	}
	if _, ok := cd.intParam(-1); ok {
		t.Error("expected negative index to be rejected")
	}
}
