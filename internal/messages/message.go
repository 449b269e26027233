package messages

import "time"

// Draft is the untrusted contact-form payload as decoded from a JSON or
// form-encoded request body. All recognized keys are strings; anything else
// in the body is ignored. A missing key, a JSON null and an empty string all
// decode to "" and are treated alike by Normalize.
type Draft struct {
	FirstName string `json:"firstName" form:"firstName"`
	LastName  string `json:"lastName" form:"lastName"`
	Email     string `json:"email" form:"email"`
	Phone     string `json:"phone" form:"phone"`
	Company   string `json:"company" form:"company"`
	Budget    string `json:"budget" form:"budget"`
	Message   string `json:"message" form:"message"`
	Regarding string `json:"regarding" form:"regarding"`
}

// Message is a normalized contact submission ready for persistence. Every
// field is populated: optional fields carry their default strings when the
// client omitted them. Immutable after insert.
type Message struct {
	FirstName string    `bson:"firstName" json:"firstName"`
	LastName  string    `bson:"lastName" json:"lastName"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	Company   string    `bson:"company" json:"company"`
	Budget    string    `bson:"budget" json:"budget"`
	Message   string    `bson:"message" json:"message"`
	Regarding string    `bson:"regarding" json:"regarding"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
