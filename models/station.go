package models

type Station struct {
    Name  string `bson:"name" json:"name" validate:"required"`
    Code  string `bson:"code,omitempty" json:"code,omitempty"`
    City  string `bson:"city,omitempty" json:"city,omitempty"`
    State string `bson:"state,omitempty" json:"state,omitempty"`
}
