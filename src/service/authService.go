package service

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"purefarm/src/models"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountRestricted  = errors.New("account has been restricted by an admin")
	ErrAccountNotApproved = errors.New("account is not yet approved")
	ErrInvalidRole        = errors.New("invalid role")
)

type AuthService struct {
	DB        *gorm.DB
	JWTSecret string
	JWTTTL    time.Duration
	Logger    *logrus.Logger
}

type Claims struct {
	Sub   string      `json:"sub"`
	Role  models.Role `json:"role"`
	Email string      `json:"email"`
	jwt.RegisteredClaims
}

type SignupInput struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	Phone       string
	Address     string
	FarmName    string
	CompanyName string
	Role        models.Role
}

//Signup creates a pending profile plus its role row. The account stays
//unusable until an admin approves it.
func (s *AuthService) Signup(input SignupInput) (*models.UserProfile, error) {
	if !input.Role.Valid() || input.Role == models.RoleAdmin {
		return nil, ErrInvalidRole
	}

	//check existing user
	var existing models.UserProfile
	if err := s.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	//hash password
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	profile := models.UserProfile{
		ID:        uuid.NewString(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  string(hashed),
		Phone:     input.Phone,
		Address:   input.Address,
		Status:    models.AccountPending,
	}
	//farm name only applies to farmers, company name to suppliers
	if input.Role == models.RoleFarmer {
		profile.FarmName = input.FarmName
	}
	if input.Role == models.RoleSupplier {
		profile.CompanyName = input.CompanyName
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserRole{UserID: profile.ID, Role: input.Role}).Error
	})
	if err != nil {
		return nil, err
	}

	s.Logger.WithFields(logrus.Fields{
		"user_id": profile.ID,
		"role":    input.Role,
	}).Info("Registered account pending approval")

	return &profile, nil
}

//Login checks credentials and the admin approval gate, then issues an
//access token carrying the user's role.
func (s *AuthService) Login(email, password string) (string, *models.UserProfile, models.Role, error) {
	var profile models.UserProfile
	if err := s.DB.Where("email = ?", email).First(&profile).Error; err != nil {
		return "", nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(password)); err != nil {
		return "", nil, "", ErrInvalidCredentials
	}

	if profile.Status == models.AccountRejected {
		return "", nil, "", ErrAccountRestricted
	}
	if profile.Status != models.AccountApproved {
		return "", nil, "", ErrAccountNotApproved
	}

	role, err := s.RoleOf(profile.ID)
	if err != nil {
		return "", nil, "", err
	}

	token, err := s.createToken(profile.ID, role, profile.Email)
	if err != nil {
		return "", nil, "", err
	}
	return token, &profile, role, nil
}

func (s *AuthService) createToken(sub string, role models.Role, email string) (string, error) {
	claims := Claims{
		Sub:   sub,
		Role:  role,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.JWTTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.JWTSecret))
}

func (s *AuthService) ParseToken(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, errors.New("invalid token")
	}
	return c, nil
}

func (s *AuthService) RoleOf(userID string) (models.Role, error) {
	var row models.UserRole
	if err := s.DB.Where("user_id = ?", userID).First(&row).Error; err != nil {
		return "", errors.New("user role not found")
	}
	return row.Role, nil
}

func (s *AuthService) CurrentUser(userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.DB.Where("id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *AuthService) UpdateProfile(userID string, firstName, lastName, phone, address string) error {
	return s.DB.Model(&models.UserProfile{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"first_name": firstName,
		"last_name":  lastName,
		"phone":      phone,
		"address":    address,
	}).Error
}

//UserWithRole is a profile joined with its role for the admin user table.
type UserWithRole struct {
	models.UserProfile
	Role models.Role `json:"role"`
}

func (s *AuthService) ListUsers() ([]UserWithRole, error) {
	var profiles []models.UserProfile
	if err := s.DB.Order("created_at DESC").Find(&profiles).Error; err != nil {
		return nil, err
	}

	var roles []models.UserRole
	if err := s.DB.Find(&roles).Error; err != nil {
		return nil, err
	}
	byUser := make(map[string]models.Role, len(roles))
	for _, r := range roles {
		byUser[r.UserID] = r.Role
	}

	users := make([]UserWithRole, 0, len(profiles))
	for _, p := range profiles {
		users = append(users, UserWithRole{UserProfile: p, Role: byUser[p.ID]})
	}
	return users, nil
}

//UpdateUserStatus flips a profile between pending, approved and rejected.
func (s *AuthService) UpdateUserStatus(userID string, status models.AccountStatus) error {
	res := s.DB.Model(&models.UserProfile{}).Where("id = ?", userID).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
