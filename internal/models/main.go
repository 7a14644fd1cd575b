package models

// ModelRegistry lists every persisted model for schema bootstrap.
var ModelRegistry = []interface{}{
	&WaitlistEntry{},
	&ThoughtEntry{},
}
