package analyzer

import "testing"

func TestGetSchemaKnownTopics(t *testing.T) {
	for _, topic := range []string{TopicVenueProfiles, TopicCrowdSnapshots, TopicSceneStats} {
		sh, err := GetSchema(topic)
		if err != nil {
			t.Errorf("GetSchema(%s) returned error: %v", topic, err)
		}
		if sh == nil {
			t.Errorf("GetSchema(%s) returned nil handler", topic)
		}
	}
}

func TestGetSchemaUnknownTopic(t *testing.T) {
	if _, err := GetSchema("mystery_events"); err == nil {
		t.Error("expected error for unknown topic")
	}
}
