package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"

	"github.com/GuilhermeLuzs/dice-play/config"
	"github.com/GuilhermeLuzs/dice-play/models"
)

var (
	adminNome  string
	adminEmail string
	adminSenha string
)

func main() {
	root := &cobra.Command{
		Use:   "seed",
		Short: "Popula as tabelas base do Dice Play",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if os.Getenv("DOCKER_ENV") != "true" {
				_ = godotenv.Load()
			}
			config.ConnectDB()
		},
	}

	tipos := &cobra.Command{
		Use:   "tipos",
		Short: "Insere os tipos de perfil (Infantil, Juvenil, Adulto)",
		Run: func(cmd *cobra.Command, args []string) {
			seedTipos()
		},
	}

	avatares := &cobra.Command{
		Use:   "avatares",
		Short: "Insere os avatares padrão",
		Run: func(cmd *cobra.Command, args []string) {
			seedAvatares()
		},
	}

	admin := &cobra.Command{
		Use:   "admin",
		Short: "Cria a conta administradora",
		Run: func(cmd *cobra.Command, args []string) {
			seedAdmin()
		},
	}
	admin.Flags().StringVar(&adminNome, "nome", "Admin", "nome da conta")
	admin.Flags().StringVar(&adminEmail, "email", "admin@diceplay.app", "e-mail da conta")
	admin.Flags().StringVar(&adminSenha, "senha", "", "senha da conta (obrigatória)")

	all := &cobra.Command{
		Use:   "all",
		Short: "Roda todos os seeders",
		Run: func(cmd *cobra.Command, args []string) {
			seedTipos()
			seedAvatares()
			if adminSenha != "" {
				seedAdmin()
			}
		},
	}
	all.Flags().StringVar(&adminNome, "nome", "Admin", "nome da conta admin")
	all.Flags().StringVar(&adminEmail, "email", "admin@diceplay.app", "e-mail da conta admin")
	all.Flags().StringVar(&adminSenha, "senha", "", "senha da conta admin (pula o admin se vazia)")

	root.AddCommand(tipos, avatares, admin, all)

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func seedTipos() {
	tipos := []models.TipoPerfil{
		{PkTipoPerfil: 1, NomeTipoPerfil: "Infantil"},
		{PkTipoPerfil: 2, NomeTipoPerfil: "Juvenil"},
		{PkTipoPerfil: 3, NomeTipoPerfil: "Adulto"},
	}

	for _, t := range tipos {
		if err := config.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&t).Error; err != nil {
			log.Fatalf("erro ao inserir tipo %s: %v", t.NomeTipoPerfil, err)
		}
	}

	fmt.Println("✅ Tipos de perfil inseridos")
}

func seedAvatares() {
	arquivos := []string{
		"ana.png",
		"arthur.png",
		"cristina.png",
		"gaspar.png",
		"helena.png",
		"holly.png",
		"kaiser.png",
		"lirio.png",
	}

	for _, nome := range arquivos {
		avatar := models.Avatar{ImgAvatar: "/avatares/" + nome}
		if err := config.DB.Where("img_avatar = ?", avatar.ImgAvatar).
			FirstOrCreate(&avatar).Error; err != nil {
			log.Fatalf("erro ao inserir avatar %s: %v", nome, err)
		}
	}

	fmt.Println("✅ Avatares inseridos")
}

func seedAdmin() {
	if adminSenha == "" {
		log.Fatal("--senha é obrigatória para criar o admin")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminSenha), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("erro ao criptografar a senha: %v", err)
	}

	user := models.User{
		Name:     adminNome,
		Email:    adminEmail,
		Password: string(hash),
		IsAdmin:  true,
	}

	if err := config.DB.Where("email = ?", adminEmail).FirstOrCreate(&user).Error; err != nil {
		log.Fatalf("erro ao criar o admin: %v", err)
	}

	fmt.Printf("✅ Admin %s pronto\n", adminEmail)
}
