package main

import (
	"fmt"
	"travel-journal/config"
	"travel-journal/inventory"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "校验旅程和装备清单数据",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		ok := color.New(color.FgGreen).SprintFunc()
		warn := color.New(color.FgYellow).SprintFunc()
		bad := color.New(color.FgRed, color.Bold).SprintFunc()

		source := journeySource(cfg)
		journey, err := loadJourney(cfg)
		if err != nil {
			fmt.Fprintf(out, "%s %s: %v\n", bad("✗"), source, err)
			return fmt.Errorf("旅程数据不合法: %w", err)
		}
		if _, err := journey.BuildCurves(0); err != nil {
			fmt.Fprintf(out, "%s 路线: %v\n", bad("✗"), err)
			return err
		}
		fmt.Fprintf(out, "%s 旅程 (%s): %d 个航点, %d 条路线, 总里程 %.1f 公里\n",
			ok("✓"), source, len(journey.WaypointList), len(journey.Routes), journey.TotalDistance()/1000)

		if cur := journey.Current(); cur != nil {
			fmt.Fprintf(out, "  当前位置: %s\n", cur.Name)
		} else {
			fmt.Fprintf(out, "  %s 没有状态为 current 的航点\n", warn("!"))
		}

		catalog, err := inventory.Load(cfg.InventoryFile)
		if err != nil {
			fmt.Fprintf(out, "%s 装备清单: %v\n", warn("!"), err)
			return nil
		}
		stats := catalog.Stats()
		fmt.Fprintf(out, "%s 装备清单: %d 件物品, 已打包 %d, 必需品 %d/%d\n",
			ok("✓"), stats.Total, stats.Packed, stats.EssentialPacked, stats.Essential)
		for _, item := range catalog.Items() {
			if _, found := catalog.Category(item.Category); !found {
				fmt.Fprintf(out, "  %s 物品 %d (%s) 的分类 %q 不存在\n", warn("!"), item.ID, item.Name, item.Category)
			}
		}
		return nil
	},
}

// journeySource 描述旅程数据的来源, 与 serve 使用的加载方式一致
func journeySource(cfg *config.Config) string {
	if cfg.DB.Enabled() {
		return fmt.Sprintf("数据库 %s:%s/%s", cfg.DB.Host, cfg.DB.Port, cfg.DB.Name)
	}
	return cfg.JourneyFile
}
