package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DiD92/wwyd/common/config"
	"github.com/DiD92/wwyd/common/log"
	"github.com/DiD92/wwyd/common/metrics"
	"github.com/DiD92/wwyd/framework/catalog"
	"github.com/DiD92/wwyd/framework/mahjong"
	"github.com/DiD92/wwyd/framework/wwyd"
	"github.com/DiD92/wwyd/gate/app"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "wwyd",
	Short: "何切题生成服务",
	Long:  `何切题生成服务，默认启动 HTTP 接口`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动 HTTP 接口",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

var (
	genCatalog string
	genHand    string
	genShanten int
	genSeed    int64
	genCount   int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "在终端生成题目，不连接数据库",
	RunE: func(cmd *cobra.Command, args []string) error {
		return generate(cmd.OutOrStdout())
	},
}

func serve() error {
	if err := config.Load(configFile); err != nil {
		return fmt.Errorf("文件配置发生错误：%w", err)
	}
	log.InitLog(config.Conf.AppName, config.Conf.Log.Level)
	log.Info("配置文件: %+v", *config.Conf)

	go func() {
		log.Info("启动监控..., URL: http://localhost:%d/debug/statsviz/", config.Conf.MetricPort)
		if err := metrics.Serve(fmt.Sprintf("0.0.0.0:%d", config.Conf.MetricPort)); err != nil {
			log.Error("监控服务退出: %v", err)
		}
	}()

	return app.Run(context.Background())
}

func generate(out io.Writer) error {
	if genHand == "" {
		return errors.New("--hand is required")
	}
	cat, err := catalog.Load(genCatalog)
	if err != nil {
		return err
	}
	r, err := cat.Restrictions(genHand)
	if err != nil {
		return err
	}

	opts := wwyd.DefaultOptions()
	opts.Seed = genSeed
	opts.Logger = log.Logger()
	g := wwyd.NewGenerator(opts)

	for i := 0; i < genCount; i++ {
		p, err := g.Generate(r, genShanten)
		if err != nil {
			return err
		}
		printProblem(out, p)
	}
	return nil
}

func printProblem(out io.Writer, p *wwyd.Problem) {
	fmt.Fprintf(out, "%s  (%d 向听, %s, seed %d)\n", mahjong.Notation(p.Hand), p.Shanten, p.Shape, p.Seed)
	fmt.Fprintf(out, "  %s\n", tileLabels(p.Hand))
	if len(p.Kans) > 0 {
		fmt.Fprintf(out, "  暗杠: %s\n", tileLabels(p.Kans))
	}
	for _, d := range p.Discards {
		accepts := make([]string, 0, len(d.Accepts))
		for _, k := range d.Accepts {
			accepts = append(accepts, k.String())
		}
		fmt.Fprintf(out, "  打 %-6s 进张 %2d  向听 %d  [%s]\n", d.Tile, d.Score, d.Shanten, strings.Join(accepts, " "))
	}
}

func tileLabels(tiles []mahjong.Tile) string {
	labels := make([]string, len(tiles))
	for i, t := range tiles {
		labels[i] = t.String()
	}
	return strings.Join(labels, " ")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "configFile", "resource/application.yml", "resource file")

	generateCmd.Flags().StringVar(&genCatalog, "catalog", "resource/hands.toml", "hand catalog")
	generateCmd.Flags().StringVar(&genHand, "hand", "", "hand name in the catalog")
	generateCmd.Flags().IntVar(&genShanten, "shanten", 1, "target shanten")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "random seed, 0 uses the clock")
	generateCmd.Flags().IntVar(&genCount, "count", 1, "number of problems")
	_ = generateCmd.MarkFlagRequired("hand")

	rootCmd.AddCommand(serveCmd, generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("error happen: %v", err)
		os.Exit(1)
	}
}
