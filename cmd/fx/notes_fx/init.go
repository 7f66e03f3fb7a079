package notes_fx

import (
	"go.uber.org/fx"
	"wander/internal/api/controllers"
	"wander/pkg/memcache"
)

var Module = fx.Provide(
	ProvideNoteStore,
	ProvideNotesController)

func ProvideNoteStore() memcache.NoteStore {
	return memcache.NewSessionNotes()
}

func ProvideNotesController(store memcache.NoteStore) *controllers.NotesController {
	return controllers.NewNotesController(store)
}
