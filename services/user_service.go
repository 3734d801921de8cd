package services

import (
	"errors"
	"fmt"

	"github.com/Khushal2406/stayfit/models"
	"github.com/Khushal2406/stayfit/utils"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// ProfileInput carries a partial profile update; nil fields are left
// untouched. A WeightGoal of 0 clears the goal.
type ProfileInput struct {
	Name               *string  `json:"name"`
	Age                *int     `json:"age"`
	Gender             *string  `json:"gender"`
	Weight             *float64 `json:"weight"`
	Height             *float64 `json:"height"`
	WeightGoal         *float64 `json:"weightGoal"`
	WeeklyRate         *float64 `json:"weeklyRate"`
	DailyCalorieTarget *float64 `json:"dailyCalorieTarget"`
}

func (in ProfileInput) Validate() error {
	if in.Age != nil && (*in.Age < 1 || *in.Age > 120) {
		return fmt.Errorf("age must be between 1 and 120")
	}
	if in.Gender != nil {
		switch *in.Gender {
		case "male", "female", "other":
		default:
			return fmt.Errorf("gender must be male, female or other")
		}
	}
	if in.Weight != nil && (*in.Weight < 20 || *in.Weight > 300) {
		return fmt.Errorf("weight must be between 20 and 300 kg")
	}
	if in.Height != nil && (*in.Height < 100 || *in.Height > 250) {
		return fmt.Errorf("height must be between 100 and 250 cm")
	}
	if in.WeightGoal != nil && *in.WeightGoal != 0 && (*in.WeightGoal < 20 || *in.WeightGoal > 300) {
		return fmt.Errorf("weight goal must be between 20 and 300 kg")
	}
	if in.WeeklyRate != nil {
		switch *in.WeeklyRate {
		case 0.25, 0.5, 0.75, 1.0:
		default:
			return fmt.Errorf("weekly rate must be 0.25, 0.5, 0.75 or 1.0")
		}
	}
	if in.DailyCalorieTarget != nil && *in.DailyCalorieTarget < 0 {
		return fmt.Errorf("daily calorie target cannot be negative")
	}
	return nil
}

// ProfileView is the profile payload the API returns, with derived BMI
// when both height and weight are known.
type ProfileView struct {
	ID                 uint     `json:"id"`
	Email              string   `json:"email"`
	Name               string   `json:"name"`
	Age                int      `json:"age,omitempty"`
	Gender             string   `json:"gender,omitempty"`
	Weight             float64  `json:"weight,omitempty"`
	Height             float64  `json:"height,omitempty"`
	WeightGoal         *float64 `json:"weightGoal,omitempty"`
	WeeklyRate         float64  `json:"weeklyRate"`
	DailyCalorieTarget *float64 `json:"dailyCalorieTarget,omitempty"`
	BMI                float64  `json:"bmi,omitempty"`
	BMICategory        string   `json:"bmiCategory,omitempty"`
}

func (s *UserService) Profile(userID uint) (*ProfileView, error) {
	user, err := s.find(userID)
	if err != nil {
		return nil, err
	}

	view := &ProfileView{
		ID:                 user.ID,
		Email:              user.Email,
		Name:               user.Name,
		Age:                user.Age,
		Gender:             user.Gender,
		Weight:             user.Weight,
		Height:             user.Height,
		WeightGoal:         user.WeightGoal,
		WeeklyRate:         user.WeeklyRate,
		DailyCalorieTarget: user.DailyCalorieTarget,
	}
	if bmi, err := utils.CalculateBMI(user.Height, user.Weight); err == nil {
		view.BMI = bmi
		view.BMICategory = utils.BMICategory(bmi)
	}
	return view, nil
}

func (s *UserService) UpdateProfile(userID uint, in ProfileInput) (*ProfileView, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	user, err := s.find(userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != "" {
		user.Name = *in.Name
	}
	if in.Age != nil {
		user.Age = *in.Age
	}
	if in.Gender != nil {
		user.Gender = *in.Gender
	}
	if in.Weight != nil {
		user.Weight = *in.Weight
	}
	if in.Height != nil {
		user.Height = *in.Height
	}
	if in.WeightGoal != nil {
		if *in.WeightGoal == 0 {
			user.WeightGoal = nil
		} else {
			goal := *in.WeightGoal
			user.WeightGoal = &goal
		}
	}
	if in.WeeklyRate != nil {
		user.WeeklyRate = *in.WeeklyRate
	}
	if in.DailyCalorieTarget != nil {
		if *in.DailyCalorieTarget == 0 {
			user.DailyCalorieTarget = nil
		} else {
			target := *in.DailyCalorieTarget
			user.DailyCalorieTarget = &target
		}
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return s.Profile(userID)
}

func (s *UserService) find(userID uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, err
	}
	return &user, nil
}
