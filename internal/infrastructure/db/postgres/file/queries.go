package file

const (
	// message_count is derived, never stored
	SelectFilesWithCounts = `
		SELECT f.id, f.owner_id, f.key, f.name, f.url, f.upload_status, COUNT(m.id) AS message_count, f.created_at, f.updated_at
		FROM files f
		LEFT JOIN messages m ON m.file_id = f.id
		WHERE f.owner_id = $1
		GROUP BY f.id
		ORDER BY f.created_at DESC
	`
	SelectFileByID = `
		SELECT id, owner_id, key, name, url, upload_status, created_at, updated_at
		FROM files
		WHERE owner_id = $1 AND id = $2
	`
	SelectFileByKey = `
		SELECT id, owner_id, key, name, url, upload_status, created_at, updated_at
		FROM files
		WHERE owner_id = $1 AND key = $2
	`
	DeleteFileByID = `
		DELETE FROM files
		WHERE owner_id = $1 AND id = $2
		RETURNING
		  id, owner_id, key, name, url, upload_status, created_at, updated_at
	`
	InsertFile = `
		INSERT INTO files (owner_id, key, name, url, upload_status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING
		  id, owner_id, key, name, url, upload_status, created_at, updated_at
	`
	UpdateFileStatusByKey = `
		UPDATE files
		SET upload_status = $2,
		    updated_at = now()
		WHERE key = $1
		RETURNING
		  id, owner_id, key, name, url, upload_status, created_at, updated_at
	`
)
