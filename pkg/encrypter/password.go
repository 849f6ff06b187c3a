package encrypter

import "golang.org/x/crypto/bcrypt"

const defaultCost = bcrypt.DefaultCost

func (e implEncrypter) HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), e.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (e implEncrypter) CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
