package infra_mongo_user

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/humanbelnik/moviehub/internal/model"
)

type UserDB struct {
	ID       bson.ObjectID `bson:"_id,omitempty"`
	Name     string        `bson:"name"`
	Username string        `bson:"username"`
	Password []byte        `bson:"password"`
}

func (u *UserDB) ToDomain() model.User {
	return model.User{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Password: u.Password,
	}
}

func FromDomain(u model.User) UserDB {
	return UserDB{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Password: u.Password,
	}
}
