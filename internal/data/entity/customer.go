package entity

// Customer is unique by phone.
type Customer struct {
	BaseSimple
	Name    string `db:"name"`
	Address string `db:"address"`
	Phone   string `db:"phone"`
	Email   string `db:"email"`
}
