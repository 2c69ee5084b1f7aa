package user

const (
	SelectUserByID = `
		SELECT id, email, stripe_customer_id, stripe_subscription_id, stripe_price_id, stripe_current_period_end, created_at
		FROM users
		WHERE id = $1
	`
	InsertUser = `
		INSERT INTO users (id, email)
		VALUES ($1, $2)
		RETURNING
		  id, email, stripe_customer_id, stripe_subscription_id, stripe_price_id, stripe_current_period_end, created_at
	`
)
