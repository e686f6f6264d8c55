package service

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/lshigami/Zooracle/internal/model"
	"github.com/lshigami/Zooracle/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedAnimalWithQuiz(t *testing.T, db *gorm.DB) (*model.Animal, *model.Test, *model.Question) {
	t.Helper()
	testRepo := repository.NewTestRepository(db)
	questionRepo := repository.NewQuestionRepository(db)

	quiz := model.Test{Name: "About elephants"}
	require.NoError(t, testRepo.Create(&quiz))

	q := model.Question{Name: "Elephants are...", QuestionTypeID: model.QuestionTypeSingleChoice}
	require.NoError(t, questionRepo.Create(&q))
	right := model.AnswerOption{Name: "Herbivores", IsCorrect: true}
	wrong := model.AnswerOption{Name: "Carnivores", IsCorrect: false}
	require.NoError(t, questionRepo.CreateOption(&right))
	require.NoError(t, questionRepo.CreateOption(&wrong))
	require.NoError(t, questionRepo.CreateLink(&model.QuestionAnswer{QuestionID: q.ID, AnswerID: right.ID}))
	require.NoError(t, questionRepo.CreateLink(&model.QuestionAnswer{QuestionID: q.ID, AnswerID: wrong.ID}))
	require.NoError(t, testRepo.AddLink(&model.TestQuestion{TestID: quiz.ID, QuestionID: q.ID}))

	previewID := "preview-1"
	animal := model.Animal{Name: "Elephant", Description: "Large", TestID: &quiz.ID, PreviewID: &previewID}
	require.NoError(t, db.Create(&animal).Error)
	require.NoError(t, db.Create(&model.AnimalPhoto{AnimalID: animal.ID, PhotoID: "photo-1"}).Error)

	user := model.User{Login: "visitor", Email: "v@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&model.FavoriteAnimal{UserID: user.ID, AnimalID: animal.ID}).Error)
	require.NoError(t, db.Create(&model.TestScore{UserID: user.ID, TestID: quiz.ID, Score: "1/1"}).Error)

	return &animal, &quiz, &q
}

func countRows(t *testing.T, db *gorm.DB, m any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}

func TestDeleteAnimalCascade(t *testing.T) {
	db := newTestDB(t)
	store := newFakeStorage()
	svc := NewDeletionService(db, repository.NewTestRepository(db), repository.NewPhotoRepository(db), store)

	animal, _, _ := seedAnimalWithQuiz(t, db)
	require.NoError(t, store.Upload(context.Background(), "images/preview-1.jpg", bytes.NewReader([]byte("img")), 3, "image/jpeg"))
	require.NoError(t, store.Upload(context.Background(), "images/photo-1.png", bytes.NewReader([]byte("img")), 3, "image/png"))

	resp, err := svc.DeleteAnimal(context.Background(), animal.ID)
	require.NoError(t, err)

	assert.Zero(t, countRows(t, db, &model.Animal{}))
	assert.Zero(t, countRows(t, db, &model.AnimalPhoto{}))
	assert.Zero(t, countRows(t, db, &model.FavoriteAnimal{}))
	assert.Zero(t, countRows(t, db, &model.Test{}))
	assert.Zero(t, countRows(t, db, &model.TestQuestion{}))
	assert.Zero(t, countRows(t, db, &model.TestScore{}))
	assert.Zero(t, countRows(t, db, &model.Question{}))
	assert.Zero(t, countRows(t, db, &model.QuestionAnswer{}))
	assert.Zero(t, countRows(t, db, &model.AnswerOption{}))

	assert.ElementsMatch(t, []string{"images/preview-1.jpg", "images/photo-1.png"}, resp.RemovedKeys)
	assert.Empty(t, resp.FailedKeys)
	assert.Empty(t, store.keys())
}

func TestDeleteAnimalReportsEmptyKeyLists(t *testing.T) {
	db := newTestDB(t)
	store := newFakeStorage()
	svc := NewDeletionService(db, repository.NewTestRepository(db), repository.NewPhotoRepository(db), store)

	animal := model.Animal{Name: "Sparrow", Description: "Small"}
	require.NoError(t, db.Create(&animal).Error)

	resp, err := svc.DeleteAnimal(context.Background(), animal.ID)
	require.NoError(t, err)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"removed_object_keys":[]`)
	assert.Contains(t, string(body), `"failed_object_keys":[]`)
}

func TestDeleteAnimalKeepsSharedQuestions(t *testing.T) {
	db := newTestDB(t)
	testRepo := repository.NewTestRepository(db)
	svc := NewDeletionService(db, testRepo, repository.NewPhotoRepository(db), newFakeStorage())

	animal, _, q := seedAnimalWithQuiz(t, db)

	other := model.Test{Name: "Shared quiz"}
	require.NoError(t, testRepo.Create(&other))
	require.NoError(t, testRepo.AddLink(&model.TestQuestion{TestID: other.ID, QuestionID: q.ID}))

	_, err := svc.DeleteAnimal(context.Background(), animal.ID)
	require.NoError(t, err)

	// The question survives because the other test still references it.
	assert.Equal(t, int64(1), countRows(t, db, &model.Question{}))
	assert.Equal(t, int64(2), countRows(t, db, &model.AnswerOption{}))
	assert.Equal(t, int64(1), countRows(t, db, &model.Test{}))
	assert.Equal(t, int64(1), countRows(t, db, &model.TestQuestion{}))
}

func TestDeleteTest(t *testing.T) {
	db := newTestDB(t)
	testRepo := repository.NewTestRepository(db)
	svc := NewDeletionService(db, testRepo, repository.NewPhotoRepository(db), newFakeStorage())

	animal, quiz, _ := seedAnimalWithQuiz(t, db)

	require.NoError(t, svc.DeleteTest(context.Background(), quiz.ID))

	assert.Zero(t, countRows(t, db, &model.Test{}))
	assert.Zero(t, countRows(t, db, &model.TestScore{}))
	assert.Zero(t, countRows(t, db, &model.Question{}))
	// The animal itself is untouched.
	var got model.Animal
	require.NoError(t, db.First(&got, animal.ID).Error)
}

func TestDeleteQuestion(t *testing.T) {
	db := newTestDB(t)
	svc := NewDeletionService(db, repository.NewTestRepository(db), repository.NewPhotoRepository(db), newFakeStorage())

	_, quiz, q := seedAnimalWithQuiz(t, db)

	require.NoError(t, svc.DeleteQuestion(context.Background(), q.ID))

	assert.Zero(t, countRows(t, db, &model.Question{}))
	assert.Zero(t, countRows(t, db, &model.AnswerOption{}))
	assert.Zero(t, countRows(t, db, &model.QuestionAnswer{}))
	assert.Zero(t, countRows(t, db, &model.TestQuestion{}))
	// The test stays, it is just empty now.
	var got model.Test
	require.NoError(t, db.First(&got, quiz.ID).Error)
}

func TestDeletePhoto(t *testing.T) {
	db := newTestDB(t)
	store := newFakeStorage()
	svc := NewDeletionService(db, repository.NewTestRepository(db), repository.NewPhotoRepository(db), store)

	animal, _, _ := seedAnimalWithQuiz(t, db)
	require.NoError(t, store.Upload(context.Background(), "images/photo-1.webp", bytes.NewReader([]byte("img")), 3, "image/webp"))

	removed, failed, err := svc.DeletePhoto(context.Background(), animal.ID, "photo-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"images/photo-1.webp"}, removed)
	assert.Empty(t, failed)
	assert.Zero(t, countRows(t, db, &model.AnimalPhoto{}))
}

func TestAnimalObjectKeysOrder(t *testing.T) {
	previewID := "p1"
	videoID := "v1"
	animal := model.Animal{
		PreviewID: &previewID,
		VideoID:   &videoID,
		Photos:    []model.AnimalPhoto{{PhotoID: "ph1"}},
	}

	keys := animalObjectKeys(&animal)
	assert.Equal(t, []string{
		"images/p1.jpg", "images/p1.jpeg", "images/p1.png", "images/p1.webp",
		"videos/p1.jpg", "videos/p1.jpeg", "videos/p1.png", "videos/p1.webp",
		"videos/v1.mp4", "videos/v1.avi",
		"images/v1.mp4", "images/v1.avi",
		"images/ph1.jpg", "images/ph1.jpeg", "images/ph1.png", "images/ph1.webp",
		"videos/ph1.jpg", "videos/ph1.jpeg", "videos/ph1.png", "videos/ph1.webp",
	}, keys)
}
