package store

import "fmt"

// keyPrefix namespaces every key written by this application.
const keyPrefix = "hiremind"

// Record types persisted per session. Each record carries its own TTL.
const (
	RecordConversation  = "conversation"
	RecordWorkflowState = "workflow_state"
	RecordProfile       = "hiring_profile"
)

// SessionKey builds the namespaced key for one record type of one session.
func SessionKey(sessionID, recordType string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, sessionID, recordType)
}

// ProfilesListKey is the recent-profiles index key.
func ProfilesListKey() string {
	return keyPrefix + ":profiles"
}

// UserKey builds the key for a user record, keyed by normalized email.
func UserKey(email string) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, email)
}

// UserIDKey builds the secondary-index key mapping a user id to its record.
func UserIDKey(id string) string {
	return fmt.Sprintf("%s:user_id:%s", keyPrefix, id)
}
