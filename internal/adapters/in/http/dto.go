package http

import "time"

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Hall     string `json:"hall"`
	Room     string `json:"room"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Account accountResponse `json:"account"`
}

type accountResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type placeOrderRequest struct {
	Quantity     int    `json:"quantity"`
	DeliveryDate string `json:"delivery_date"`
	Notes        string `json:"notes"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

type submitReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type idResponse struct {
	ID string `json:"id"`
}

type orderResponse struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Phone        string    `json:"phone"`
	Hall         string    `json:"hall"`
	Room         string    `json:"room"`
	Quantity     int       `json:"quantity"`
	TotalPrice   int       `json:"total_price"`
	DeliveryDate string    `json:"delivery_date"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type loyaltyResponse struct {
	BottleCount   int `json:"bottle_count"`
	CurrentStreak int `json:"current_streak"`
}

type reviewResponse struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
