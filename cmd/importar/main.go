// importar carga clientes, funcionarios o productos desde un CSV (planilla exportada de Excel)
// usando las mismas reglas de alta de la API: normalización, verificación de duplicados y
// id obligatorio en la respuesta del backend.
//
// Uso: go run ./cmd/importar -tipo cliente -arquivo clientes.csv [-encoding win1252] [-sep ';']
// El token del backend se toma de -token o de BACKEND_TOKEN.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/comandas-web/internal/application/usecase"
	"github.com/jhoicas/comandas-web/internal/infrastructure/imaging"
	"github.com/jhoicas/comandas-web/internal/infrastructure/proxy"
	"github.com/jhoicas/comandas-web/pkg/config"
	"github.com/jhoicas/comandas-web/pkg/logger"
)

func main() {
	tipo := flag.String("tipo", "", "cliente | funcionario | produto")
	arquivo := flag.String("arquivo", "", "ruta del CSV")
	encoding := flag.String("encoding", "utf8", "utf8 | win1252 | latin1")
	sep := flag.String("sep", ";", "separador de columnas")
	token := flag.String("token", os.Getenv("BACKEND_TOKEN"), "token del backend (Bearer)")
	flag.Parse()

	if *tipo == "" || *arquivo == "" || len([]rune(*sep)) != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "importar"})

	f, err := os.Open(*arquivo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := readRows(f, *encoding, []rune(*sep)[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	client, err := proxy.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, log.Component("proxy"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cliente del backend: %v\n", err)
		os.Exit(1)
	}

	var save saveFunc
	switch *tipo {
	case "cliente":
		save = clienteSaver(usecase.NewClienteUseCase(proxy.NewClienteRepository(client), nil, log.Component("clientes")))
	case "funcionario":
		save = funcionarioSaver(usecase.NewFuncionarioUseCase(proxy.NewFuncionarioRepository(client), nil, log.Component("funcionarios")))
	case "produto":
		images := imaging.NewService(cfg.Images.MaxSide, client)
		save = produtoSaver(usecase.NewProdutoUseCase(proxy.NewProdutoRepository(client), images, nil, log.Component("produtos")))
	default:
		fmt.Fprintf(os.Stderr, "Tipo desconocido: %q\n", *tipo)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()
	ctx = proxy.WithToken(ctx, *token)

	sum := run(ctx, rows, save)
	for _, line := range sum.Failures {
		fmt.Fprintln(os.Stderr, line)
	}
	fmt.Printf("Importados %d, duplicados %d, con error %d (de %d filas)\n",
		sum.Created, sum.Conflicts, sum.Errors, len(rows))
	if sum.Errors > 0 {
		os.Exit(1)
	}
}
