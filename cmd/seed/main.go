// Seed tool: наполняет хранилище тестовыми пользователями и адресами,
// опционально постами. Пользователи и адреса создаются только здесь —
// у RPC-слоя нет операций для них.
package main

import (
	"flag"
	"fmt"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/thereayou/postboard/internal/database"
	"github.com/thereayou/postboard/internal/models"
)

type fixture struct {
	user    models.User
	address *models.Address
}

var fixtures = []fixture{
	{
		user:    models.User{Name: "Leanne Graham", Username: "Bret", Email: "leanne@april.biz", Phone: "1-770-736-8031"},
		address: &models.Address{Street: "Kulas Light", State: "WI", City: "Gwenborough", Zipcode: "92998-3874"},
	},
	{
		user:    models.User{Name: "Ervin Howell", Username: "Antonette", Email: "ervin@melissa.tv", Phone: "010-692-6593"},
		address: &models.Address{Street: "Victor Plains", State: "NY", City: "Wisokyburgh", Zipcode: "90566-7771"},
	},
	{
		user:    models.User{Name: "Clementine Bauch", Username: "Samantha", Email: "clementine@yesenia.net", Phone: "1-463-123-4447"},
		address: &models.Address{Street: "Douglas Extension", State: "CA", City: "McKenziehaven", Zipcode: "59590-4157"},
	},
	{
		user:    models.User{Name: "Patricia Lebsack", Username: "Karianne", Email: "patricia@kory.org", Phone: "493-170-9623"},
		address: &models.Address{Street: "Hoeger Mall", State: "TX", City: "South Elvis", Zipcode: "53919-4257"},
	},
	{
		// пользователь без адреса, чтобы проверять left-join
		user: models.User{Name: "Chelsey Dietrich", Username: "Kamren", Email: "chelsey@annie.ca", Phone: "(254)954-1289"},
	},
}

func main() {
	var postsPerUser int
	flag.IntVar(&postsPerUser, "posts", 0, "number of sample posts to create per user")
	flag.Parse()

	if err := godotenv.Load(".env.local"); err != nil {
		godotenv.Load()
	}

	log := logrus.New()

	dbConn := &database.Database{}
	if err := dbConn.Connect(); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	defer dbConn.Close()

	for _, f := range fixtures {
		user := f.user
		user.ID = uuid.NewString()

		if err := dbConn.SaveUser(&user); err != nil {
			log.Fatalf("seed user %s failed: %v", user.Username, err)
		}

		if f.address != nil {
			address := *f.address
			address.ID = uuid.NewString()
			address.UserID = user.ID
			if err := dbConn.SaveAddress(&address); err != nil {
				log.Fatalf("seed address for %s failed: %v", user.Username, err)
			}
		}

		for i := 0; i < postsPerUser; i++ {
			title := fmt.Sprintf("Post %d by %s", i+1, user.Username)
			body := fmt.Sprintf("Sample post body %d", i+1)
			if _, err := dbConn.CreatePost(user.ID, title, body); err != nil {
				log.Fatalf("seed post for %s failed: %v", user.Username, err)
			}
		}

		log.WithFields(logrus.Fields{"user": user.Username, "id": user.ID}).Info("seeded")
	}
}
