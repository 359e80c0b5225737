package doubts

import (
	"testing"
	"time"
)

func TestLogAppendOrder(t *testing.T) {
	log := NewLog()
	log.Append("Algebra", Message{Sender: SenderUser, Content: "first", At: time.Now()})
	log.Append("Algebra", Message{Sender: SenderAssistant, Content: "second", At: time.Now()})
	log.Append("Algebra", Message{Sender: SenderUser, Content: "third", At: time.Now()})

	thread := log.Thread("Algebra")
	if len(thread) != 3 {
		t.Fatalf("thread length = %d, want 3", len(thread))
	}
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if thread[i].Content != w {
			t.Errorf("message %d = %q, want %q", i, thread[i].Content, w)
		}
	}
}

func TestLogUnknownTopicEmpty(t *testing.T) {
	log := NewLog()
	if got := log.Thread("nothing"); len(got) != 0 {
		t.Errorf("unknown topic thread = %v, want empty", got)
	}
	if n := log.Len("nothing"); n != 0 {
		t.Errorf("Len = %d, want 0", n)
	}
}

func TestLogThreadsIndependent(t *testing.T) {
	log := NewLog()
	log.Append("Algebra", Message{Sender: SenderUser, Content: "a"})
	log.Append("Geometry", Message{Sender: SenderUser, Content: "g"})

	if log.Len("Algebra") != 1 || log.Len("Geometry") != 1 {
		t.Error("topics must keep separate threads")
	}

	topics := log.Topics()
	if len(topics) != 2 || topics[0] != "Algebra" || topics[1] != "Geometry" {
		t.Errorf("topics = %v", topics)
	}
}

func TestLogThreadReturnsCopy(t *testing.T) {
	log := NewLog()
	log.Append("Algebra", Message{Sender: SenderUser, Content: "original"})

	thread := log.Thread("Algebra")
	thread[0].Content = "mutated"

	if got := log.Thread("Algebra")[0].Content; got != "original" {
		t.Errorf("log content = %q, caller mutation leaked in", got)
	}
}
