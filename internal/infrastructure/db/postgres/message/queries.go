package message

const (
	// Ordering is the composite (created_at DESC, id DESC): created_at alone
	// is not total when two messages share a timestamp, and an unstable
	// order would break cursor resumption.
	SelectMessagesPage = `
		SELECT id, file_id, owner_id, text, is_user_message, created_at
		FROM messages
		WHERE owner_id = $1 AND file_id = $2
		ORDER BY created_at DESC, id DESC
		LIMIT $3
	`
	SelectMessagesPageAfter = `
		SELECT id, file_id, owner_id, text, is_user_message, created_at
		FROM messages
		WHERE owner_id = $1 AND file_id = $2 AND (created_at, id) < ($3, $4)
		ORDER BY created_at DESC, id DESC
		LIMIT $5
	`
	SelectCursorKey = `
		SELECT created_at, id
		FROM messages
		WHERE owner_id = $1 AND file_id = $2 AND id = $3
	`
)
