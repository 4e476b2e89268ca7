package errors

var (
	ErrUserNotFound         = NotFound("User not found")
	ErrUserExists           = New(CodeAlreadyExists, "user already exists")
	ErrMatchNotFound        = NotFound("Match not found")
	ErrNotParticipant       = Forbidden("User not a participant in this match")
	ErrRoomNotFound         = NotFound("Chat room not found")
	ErrRoomAccessDenied     = Forbidden("Access denied to this chat room")
	ErrRoommatePrefsMissing = NotFound("No roommate preferences found")
	ErrResidentPrefsMissing = NotFound("No resident preferences found")
	ErrInvalidAction        = InvalidArg("Invalid action. Must be 'accept' or 'reject'")
	ErrChatUnavailable      = Unavailable("Chat endpoints are not available: chat tables (chat_rooms/messages) are missing. Run migrations to add them.")
	ErrAdminSecretMismatch  = Unauthorized("invalid admin secret")
	ErrInvalidToken         = Unauthorized("invalid or expired token")
)

func ErrPlaceholderCreateFailed(cause error) error {
	return Wrap(CodeInternal, "Failed to create user automatically.", cause)
}
