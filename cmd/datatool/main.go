package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"cybertcm/internal/config"
	"cybertcm/internal/db"
	"cybertcm/internal/repository"
	"cybertcm/internal/service"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	resultRepo := repository.NewPgResultRepository(pool)
	exportSvc := service.NewExportService(resultRepo, userRepo)

	for {
		fmt.Println("\n===== 赛博中医 数据管理 =====")
		fmt.Println("[1] 统计概览")
		fmt.Println("[2] 用户列表")
		fmt.Println("[3] 搜索测试结果")
		fmt.Println("[4] 导出结果 CSV")
		fmt.Println("[5] 导出用户 CSV")
		fmt.Println("[6] 退出")
		fmt.Print("请选择: ")

		line, _ := reader.ReadString('\n')
		switch strings.TrimSpace(line) {
		case "1":
			showStats(ctx, resultRepo)
		case "2":
			listUsers(ctx, userRepo)
		case "3":
			searchResults(ctx, reader, resultRepo)
		case "4":
			exportResults(ctx, reader, exportSvc)
		case "5":
			exportUsers(ctx, exportSvc)
		case "6":
			os.Exit(0)
		default:
			fmt.Println("无效选项")
		}
	}
}

func showStats(ctx context.Context, repo repository.ResultRepository) {
	stats, err := repo.Stats(ctx)
	if err != nil {
		fmt.Printf("查询失败: %v\n", err)
		return
	}
	fmt.Printf("用户总数: %d\n", stats.TotalUsers)
	fmt.Printf("测试总数: %d\n", stats.TotalResults)
	fmt.Printf("今日测试: %d\n", stats.TodayCount)
	if len(stats.TypeDistribution) > 0 {
		fmt.Println("体质类型分布:")
		for _, tc := range stats.TypeDistribution {
			fmt.Printf("  %s %s: %d\n", tc.TypeCode, tc.TypeName, tc.Count)
		}
	}
}

func listUsers(ctx context.Context, repo repository.UserRepository) {
	users, err := repo.List(ctx)
	if err != nil {
		fmt.Printf("查询失败: %v\n", err)
		return
	}
	if len(users) == 0 {
		fmt.Println("暂无用户")
		return
	}
	for i, u := range users {
		fmt.Printf("[%d] %s (测试 %d 次, 注册于 %s)\n",
			i+1, u.Nickname, u.ResultCount, u.CreatedAt.Format("2006-01-02"))
	}
}

func searchResults(ctx context.Context, reader *bufio.Reader, repo repository.ResultRepository) {
	filter := repository.ResultFilter{}

	fmt.Print("昵称关键字 (回车跳过): ")
	nickname, _ := reader.ReadString('\n')
	filter.Nickname = strings.TrimSpace(nickname)

	fmt.Print("类型代码 (如 CVDQ, 回车跳过): ")
	typeCode, _ := reader.ReadString('\n')
	filter.TypeCode = strings.TrimSpace(typeCode)

	fmt.Print("起始日期 (YYYY-MM-DD, 回车跳过): ")
	from, _ := reader.ReadString('\n')
	if s := strings.TrimSpace(from); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			filter.From = t
		} else {
			fmt.Println("日期格式无效, 已忽略")
		}
	}

	summaries, err := repo.Search(ctx, filter)
	if err != nil {
		fmt.Printf("查询失败: %v\n", err)
		return
	}
	if len(summaries) == 0 {
		fmt.Println("没有匹配的结果")
		return
	}
	for _, s := range summaries {
		fmt.Printf("%s | %s | %s %s | %s %d | %s\n",
			s.ID, s.Nickname, s.TypeCode, s.TypeName,
			s.Primary, s.PrimaryScore, s.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func exportResults(ctx context.Context, reader *bufio.Reader, svc *service.ExportService) {
	fmt.Print("昵称关键字 (回车导出全部): ")
	nickname, _ := reader.ReadString('\n')
	filter := repository.ResultFilter{Nickname: strings.TrimSpace(nickname)}

	path := fmt.Sprintf("results_%s.csv", time.Now().Format("20060102_150405"))
	f, err := os.Create(path)
	if err != nil {
		fmt.Printf("创建文件失败: %v\n", err)
		return
	}
	defer f.Close()

	if err := svc.WriteResultsCSV(ctx, f, filter); err != nil {
		fmt.Printf("导出失败: %v\n", err)
		return
	}
	fmt.Printf("已导出到 %s\n", path)
}

func exportUsers(ctx context.Context, svc *service.ExportService) {
	path := fmt.Sprintf("users_%s.csv", time.Now().Format("20060102_150405"))
	f, err := os.Create(path)
	if err != nil {
		fmt.Printf("创建文件失败: %v\n", err)
		return
	}
	defer f.Close()

	if err := svc.WriteUsersCSV(ctx, f); err != nil {
		fmt.Printf("导出失败: %v\n", err)
		return
	}
	fmt.Printf("已导出到 %s\n", path)
}
