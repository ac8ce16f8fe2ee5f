package store

// Prepared query texts used by the repositories. Profile saves rely on the
// JSONB "||" operator so the merge of supplied fields over the stored
// document happens atomically inside the database.
const (
	createUser = `INSERT INTO users (user_id, device_secret_hash)
    VALUES ($1, $2)
    ON CONFLICT (user_id) DO UPDATE SET user_id = users.user_id
    RETURNING user_id, device_secret_hash, created_at;`

	findUser = `SELECT user_id, device_secret_hash, created_at
    FROM users
    WHERE user_id = $1;`

	getAllAllergens = `SELECT doc FROM allergens ORDER BY id;`

	getAllergenByID = `SELECT doc FROM allergens WHERE id = $1;`

	getAllResources = `SELECT doc FROM educational_resources ORDER BY id;`

	getProfile = `SELECT doc FROM user_profiles WHERE user_id = $1;`

	saveProfile = `INSERT INTO user_profiles (user_id, doc, updated_at)
    VALUES ($1, $2, NOW())
    ON CONFLICT (user_id) DO UPDATE
        SET doc = user_profiles.doc || EXCLUDED.doc,
            updated_at = NOW()
    RETURNING doc;`

	appendLog = `INSERT INTO log_entries (id, user_id, doc, created_at)
    VALUES ($1, $2, $3, $4);`
)
