package consts

// Mongo collections. The users collection keeps the field names of the
// original Firestore export; everything written by this service uses
// snake_case.
const (
	ColPosts        = "posts"
	ColLikes        = "curtidas"
	ColComments     = "comentarios"
	ColUsers        = "users"
	ColAppointments = "agendamentos"
)

// PostMediaPrefix is the logical prefix every post attachment is stored
// under in the media bucket.
const PostMediaPrefix = "posts/"

// Display-name fallbacks used when an author profile cannot be resolved.
// The feed, the per-author listing and the comment thread historically
// used different literals; all three are kept as-is.
const (
	FallbackUnknownUser = "Usuário desconhecido"
	FallbackUser        = "Usuário"
	FallbackAnonymous   = "Anônimo"
)

// Placeholder avatars.
const (
	DefaultAvatarURL   = "https://storage.googleapis.com/wsapet-assets/avatars/default.png"
	AnonymousAvatarURL = "https://storage.googleapis.com/wsapet-assets/avatars/anonimo.png"
)

// Informational media-cleanup outcomes reported on post deletion.
const (
	MediaStatusRemoved = "mídia removida"
	MediaStatusFailed  = "falha ao remover mídia"
	MediaStatusNone    = "nenhuma mídia associada"
)
