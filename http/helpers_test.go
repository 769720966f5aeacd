package http_test

import (
	"github.com/stretchr/testify/mock"

	"github.com/sagarc03/bookstall"
	"github.com/sagarc03/bookstall/keybackend"
)

const testToken = "token12345"

func testCatalog() *bookstall.Catalog {
	return bookstall.NewCatalog(
		bookstall.Item{Name: "Book 1", Category: "Music", Price: 201},
		bookstall.Item{Name: "Book 2", Category: "StandUp", Price: 200},
		bookstall.Item{Name: "Book 3", Category: "Dance", Price: 222},
		bookstall.Item{Name: "Book 4", Category: "Music", Price: 300},
		bookstall.Item{Name: "Book 5", Category: "Music", Price: 400},
	)
}

func testVerifier() *keybackend.StaticToken {
	return keybackend.NewStaticToken(testToken)
}

// MockVerifier is a mock implementation of http.TokenVerifier
type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Verify(token string) error {
	args := m.Called(token)
	return args.Error(0)
}
