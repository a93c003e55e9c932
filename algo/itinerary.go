package algo

import (
	"container/heap"
	"math"
	"slices"
	"travel-journal/model"
	"travel-journal/utils"
)

// Leg 行程中的一段
type Leg struct {
	FromID   string          `json:"from_id"`
	FromName string          `json:"from_name"`
	ToID     string          `json:"to_id"`
	ToName   string          `json:"to_name"`
	Distance float64         `json:"distance_m"`
	Bearing  float64         `json:"bearing"`  // 初始方位角 (度)
	Reversed bool            `json:"reversed"` // 沿双向路线的反方向
	Edge     model.RouteEdge `json:"-"`
}

// Itinerary 两个航点之间沿路线的行程
type Itinerary struct {
	Path     []string `json:"path"` // 航点 ID 序列
	Legs     []Leg    `json:"legs"`
	Distance float64  `json:"distance_m"` // 总距离 (米)
	Found    bool     `json:"found"`
}

// arc 邻接表中的一条有向边
type arc struct {
	to       string
	dist     float64
	edge     model.RouteEdge
	reversed bool
}

// visit 待访问的航点及其累计距离 (米)
type visit struct {
	id   string
	dist float64
}

// frontier 按累计距离排序的小顶堆
type frontier []visit

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(a, b int) bool { return f[a].dist < f[b].dist }
func (f frontier) Swap(a, b int)      { f[a], f[b] = f[b], f[a] }

func (f *frontier) Push(x any) { *f = append(*f, x.(visit)) }

func (f *frontier) Pop() any {
	old := *f
	v := old[len(old)-1]
	*f = old[:len(old)-1]
	return v
}

// adjacency 构建邻接表, 双向路线同时加入反向边
func (j *Journey) adjacency() map[string][]arc {
	adj := make(map[string][]arc)
	for _, e := range j.Routes {
		from, to, err := j.Resolve(e)
		if err != nil {
			continue
		}
		dist := utils.HaversineDistance(from.Point(), to.Point())
		adj[e.From] = append(adj[e.From], arc{to: e.To, dist: dist, edge: e})
		if e.IsBidirectional() {
			adj[e.To] = append(adj[e.To], arc{to: e.From, dist: dist, edge: e, reversed: true})
		}
	}
	return adj
}

// FindItinerary 使用 Dijkstra 算法沿路线寻找最短行程
// 单向路线只能顺着走, 双向路线两个方向都可以
func (j *Journey) FindItinerary(startID, endID string) (Itinerary, error) {
	if _, err := j.Waypoint(startID); err != nil {
		return Itinerary{}, err
	}
	if _, err := j.Waypoint(endID); err != nil {
		return Itinerary{}, err
	}

	adj := j.adjacency()
	cost := make(map[string]float64)
	prev := make(map[string]string)
	prevArc := make(map[string]arc)
	visited := make(map[string]bool)

	for id := range j.Waypoints {
		cost[id] = math.Inf(1)
	}
	cost[startID] = 0

	queue := &frontier{{id: startID}}
	for queue.Len() > 0 {
		cur := heap.Pop(queue).(visit)
		if visited[cur.id] {
			continue
		}
		visited[cur.id] = true
		if cur.id == endID {
			break
		}

		for _, a := range adj[cur.id] {
			if d := cost[cur.id] + a.dist; d < cost[a.to] {
				cost[a.to] = d
				prev[a.to] = cur.id
				prevArc[a.to] = a
				heap.Push(queue, visit{id: a.to, dist: d})
			}
		}
	}

	if math.IsInf(cost[endID], 1) {
		return Itinerary{Path: []string{}, Legs: []Leg{}}, nil
	}

	// 回溯路径
	path := []string{}
	for at := endID; ; at = prev[at] {
		path = append(path, at)
		if at == startID {
			break
		}
	}
	slices.Reverse(path)

	legs := make([]Leg, 0, len(path)-1)
	total := 0.0
	for i := 0; i < len(path)-1; i++ {
		from := j.Waypoints[path[i]]
		to := j.Waypoints[path[i+1]]
		a := prevArc[path[i+1]]
		legs = append(legs, Leg{
			FromID:   from.ID,
			FromName: from.Name,
			ToID:     to.ID,
			ToName:   to.Name,
			Distance: a.dist,
			Bearing:  utils.Bearing(from.Point(), to.Point()),
			Reversed: a.reversed,
			Edge:     a.edge,
		})
		total += a.dist
	}

	return Itinerary{
		Path:     path,
		Legs:     legs,
		Distance: total,
		Found:    true,
	}, nil
}
