package main

import (
	"fmt"
	"math"
	"travel-journal/model"
	"travel-journal/render"

	"github.com/spf13/cobra"
)

var (
	routesZoom     float64
	routesSegments int
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "输出指定缩放级别下的路线 GeoJSON",
	Example: `  journey routes --zoom 6
  journey routes --zoom 4 --segments 80 > routes.geojson`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if math.IsNaN(routesZoom) || routesZoom < 0 || routesZoom > 22 {
			return fmt.Errorf("zoom 必须在 0 到 22 之间: %v", routesZoom)
		}

		journey, err := loadJourney(cfg)
		if err != nil {
			return fmt.Errorf("加载旅程失败: %w", err)
		}

		fc, err := render.Routes(journey, routesZoom, routesSegments)
		if err != nil {
			return err
		}

		body, err := fc.MarshalJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(body))
		return err
	},
}

func init() {
	routesCmd.Flags().Float64Var(&routesZoom, "zoom", 5, "地图缩放级别")
	routesCmd.Flags().IntVar(&routesSegments, "segments", model.DefaultCurveSegments, "每条曲线的采样段数")
}
