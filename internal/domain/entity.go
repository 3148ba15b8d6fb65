package domain

// Entity is one selectable subject of a report: a user or a quarter.
// AvatarURL is empty for quarters.
type Entity struct {
	ID        int
	Name      string
	AvatarURL string
}

// AvatarIndex maps entity IDs to avatar URLs, built while the selector loads.
type AvatarIndex map[int]string

// NewAvatarIndex builds the id→avatar lookup for a list of entities.
// Entities without an avatar are left out.
func NewAvatarIndex(entities []Entity) AvatarIndex {
	idx := make(AvatarIndex, len(entities))
	for _, e := range entities {
		if e.AvatarURL != "" {
			idx[e.ID] = e.AvatarURL
		}
	}
	return idx
}

// FindEntity returns the entity with the given ID, if present.
func FindEntity(entities []Entity, id int) (Entity, bool) {
	for _, e := range entities {
		if e.ID == id {
			return e, true
		}
	}
	return Entity{}, false
}
