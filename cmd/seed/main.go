// seed cria o usuário Admin inicial direto na coleção usuarios, com a senha
// já como hash bcrypt.
//
// Uso: go run ./cmd/seed -nome "Nome" -email admin@exemplo.com.br -senha 'Senh@1'
// A conexão usa as mesmas variáveis de ambiente da API (MONGODB_URI, DB_NAME).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatec-votorantim/api-prestadores/internal/domain/entity"
	"github.com/fatec-votorantim/api-prestadores/internal/infrastructure/mongodb"
	"github.com/fatec-votorantim/api-prestadores/pkg/config"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	nome := flag.String("nome", "Administrador", "nome do usuário")
	email := flag.String("email", "", "email do usuário (minúsculo)")
	senha := flag.String("senha", "", "senha em texto plano (vira hash bcrypt)")
	flag.Parse()

	if *email == "" || *senha == "" {
		fmt.Fprintln(os.Stderr, "informe -email e -senha")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "carregar configuração: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	client, err := mongodb.Connect(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conectar ao MongoDB: %v\n", err)
		os.Exit(1)
	}
	defer client.Disconnect(ctx)

	repo := mongodb.NewUsuarioRepository(mongodb.Database(client, cfg.DB))

	// não duplica o email se o seed rodar de novo
	if n, err := repo.CountByEmail(ctx, *email, primitive.NilObjectID); err != nil {
		fmt.Fprintf(os.Stderr, "consultar email: %v\n", err)
		os.Exit(1)
	} else if n > 0 {
		fmt.Printf("usuário %s já existe, nada a fazer\n", *email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*senha), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gerar hash: %v\n", err)
		os.Exit(1)
	}

	res, err := repo.Insert(ctx, &entity.Usuario{
		Nome:   *nome,
		Email:  *email,
		Senha:  string(hash),
		Ativo:  true,
		Tipo:   entity.TipoAdmin,
		Avatar: fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=F00&color=FFF",
			strings.ReplaceAll(*nome, " ", "+")),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "inserir usuário: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("usuário Admin criado: %s\n", res.InsertedID)
}
