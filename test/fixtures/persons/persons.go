package persons

import (
	"time"

	"github.com/koskimas/deepmatch/test/fixtures/pets"
)

type PersonId string

type Person struct {
	Id        PersonId   `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  *string    `json:"lastName"`
	Age       int        `json:"age"`
	Address   Address    `json:"address"`
	Pets      []pets.Pet `json:"pets"`
	CreatedAt time.Time  `json:"createdAt"`
}

type Address struct {
	PostalCode string `json:"postalCode"`
	Street     string `json:"street"`
}

func Jennifer() Person {
	lastName := "Aniston"

	return Person{
		Id:        "1001",
		FirstName: "Jennifer",
		LastName:  &lastName,
		Age:       42,
		Address: Address{
			PostalCode: "00100",
			Street:     "Mannerheimintie 1",
		},
		Pets: []pets.Pet{
			{Id: "1", Name: "Doggo", Species: pets.SpeciesDog},
			{Id: "2", Name: "Catto", Species: pets.SpeciesCat},
		},
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}
