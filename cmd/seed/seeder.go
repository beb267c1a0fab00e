package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/brianvoe/gofakeit/v6"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	post_service "blog-service/internal/domain/ports/input/post"
	user_service "blog-service/internal/domain/ports/input/user"
	ports "blog-service/internal/domain/ports/output"
)

var sampleUsers = []model.CreateUserDTO{
	{Name: "田中太郎", Email: "tanaka@example.com"},
	{Name: "佐藤花子", Email: "sato@example.com"},
	{Name: "鈴木一郎", Email: "suzuki@example.com"},
}

// samplePosts reference sampleUsers by index.
var samplePosts = []struct {
	author int
	title  string
	body   string
}{
	{0, "フルスタックアプリケーションの開発について", "React、Node.js、Prismaを使用したフルスタックアプリケーションの開発は非常に効率的です。型安全性を保ちながら、迅速な開発が可能になります。"},
	{1, "TypeScriptの利点", "TypeScriptを使用することで、開発時にエラーを早期に発見でき、コードの品質が向上します。また、IDEのサポートも充実しており、開発効率が大幅に向上します。"},
	{2, "Prismaを使ったデータベース操作", "Prismaは型安全なORMとして、データベース操作を簡単かつ安全に行うことができます。マイグレーション機能も充実しており、データベーススキーマの管理が容易です。"},
	{0, "Reactでのコンポーネント設計", "Reactでは再利用可能なコンポーネントを作成することで、保守性の高いアプリケーションを構築できます。Hooksを活用することで、状態管理もシンプルになります。"},
}

type Seeder struct {
	users user_service.Service
	posts post_service.Service
	log   ports.Logger
}

type Result struct {
	Users int
	Posts int
}

func NewSeeder(users user_service.Service, posts post_service.Service, log ports.Logger) *Seeder {
	return &Seeder{users: users, posts: posts, log: log}
}

// Run creates the sample data set and then fakeUsers generated users with
// postsPerUser posts each. Users whose email is already taken are skipped.
func (s *Seeder) Run(ctx context.Context, fakeUsers, postsPerUser int) (Result, error) {
	var result Result

	authors := make([]int64, len(sampleUsers))
	for i := range sampleUsers {
		id, created, err := s.createUser(ctx, sampleUsers[i])
		if err != nil {
			return result, err
		}
		if created {
			result.Users++
		}
		authors[i] = id
	}

	for _, p := range samplePosts {
		if authors[p.author] == 0 {
			continue
		}
		if _, err := s.posts.CreatePost(ctx, &model.CreatePostDTO{Title: p.title, Content: p.body, AuthorID: authors[p.author]}); err != nil {
			return result, fmt.Errorf("create sample post %q: %w", p.title, err)
		}
		result.Posts++
	}

	for i := 0; i < fakeUsers; i++ {
		id, created, err := s.createUser(ctx, model.CreateUserDTO{Name: gofakeit.Name(), Email: gofakeit.Email()})
		if err != nil {
			return result, err
		}
		if !created {
			continue
		}
		result.Users++

		for j := 0; j < postsPerUser; j++ {
			dto := &model.CreatePostDTO{
				Title:    gofakeit.Sentence(gofakeit.Number(3, 8)),
				Content:  gofakeit.Paragraph(2, 4, 12, "\n\n"),
				AuthorID: id,
			}
			if _, err := s.posts.CreatePost(ctx, dto); err != nil {
				return result, fmt.Errorf("create fake post for user %d: %w", id, err)
			}
			result.Posts++
		}
	}

	return result, nil
}

func (s *Seeder) createUser(ctx context.Context, dto model.CreateUserDTO) (int64, bool, error) {
	user, err := s.users.CreateUser(ctx, &dto)
	if err != nil {
		if errors.Is(err, custom_errors.ErrEmailExists) {
			s.log.Warn("Skipping existing user", slog.String("email", dto.Email))
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("create user %s: %w", dto.Email, err)
	}
	return user.ID, true, nil
}
