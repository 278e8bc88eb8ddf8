package profileRepo

import "gymnexa/backend"

// ProfileRepository is the document-store contract for member profiles.
type ProfileRepository = backend.ProfileStore

const collectionName = "users"
