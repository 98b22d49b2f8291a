// Command bench drives synthetic scroll workloads through the engine and
// exposes optional pprof/Prometheus endpoints.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/IvanBrykalov/virtgrid/grid"
	pmet "github.com/IvanBrykalov/virtgrid/metrics/prom"
)

// benchEl is the cheapest possible handle: enough state to prove the
// engine assigned and positioned it.
type benchEl struct {
	index     int
	top, left int
}

type benchRenderer struct {
	created  int
	assigns  int
	abandons int
}

func (r *benchRenderer) Create() *benchEl            { r.created++; return &benchEl{index: -1} }
func (r *benchRenderer) Assign(el *benchEl, idx int) { r.assigns++; el.index = idx }
func (r *benchRenderer) Abandon(el *benchEl)         { r.abandons++; el.index = -1 }

type benchSurface struct {
	w, h      int
	scrollTop int
	extent    int
	handles   int
	listeners []grid.SurfaceListener
}

func (s *benchSurface) Viewport() (int, int)              { return s.w, s.h }
func (s *benchSurface) ScrollTop() int                    { return s.scrollTop }
func (s *benchSurface) SetContentExtent(h int)            { s.extent = h }
func (s *benchSurface) Append(*benchEl)                   { s.handles++ }
func (s *benchSurface) Remove(*benchEl)                   { s.handles-- }
func (s *benchSurface) Place(el *benchEl, top, left int)  { el.top, el.left = top, left }
func (s *benchSurface) Subscribe(l grid.SurfaceListener)  { s.listeners = append(s.listeners, l) }
func (s *benchSurface) Unsubscribe(grid.SurfaceListener)  { s.listeners = nil }

func (s *benchSurface) scroll(top int) {
	s.scrollTop = top
	for _, l := range s.listeners {
		l.SurfaceScrolled(top)
	}
}

func main() {
	var (
		items      = flag.Int("items", 1_000_000, "virtual item count")
		cellW      = flag.Int("cell-width", 320, "cell width")
		cellH      = flag.Int("cell-height", 240, "cell height")
		vw         = flag.Int("vw", 1920, "viewport width")
		vh         = flag.Int("vh", 1080, "viewport height")
		duration   = flag.Duration("duration", 10*time.Second, "benchmark duration")
		jumpPct    = flag.Int("jumps", 5, "percentage of random jumps vs smooth scrolling [0..100]")
		step       = flag.Int("step", 120, "smooth scroll step in pixels")
		seed       = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		swapEvery  = flag.Int("swap-every", 0, "renderer swap every N passes (0 = never)")
		pprofAddr  = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricAddr = flag.String("http", "", "serve Prometheus metrics at addr; empty = disabled")
	)
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	var metrics grid.Metrics = grid.NopMetrics{}
	if *metricAddr != "" {
		metrics = pmet.New(nil, "virtgrid", "bench", nil)
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			log.Printf("metrics: serving at %s", *metricAddr)
			log.Println(http.ListenAndServe(*metricAddr, nil))
		}()
	}

	renderers := [2]*benchRenderer{{}, {}}
	ctrl := grid.New(grid.Options[*benchEl]{
		Renderer:   renderers[0],
		CellWidth:  *cellW,
		CellHeight: *cellH,
		ItemCount:  *items,
		Metrics:    metrics,
	})
	surface := &benchSurface{w: *vw, h: *vh}
	if err := ctrl.Attach(surface); err != nil {
		log.Fatal(err)
	}

	r := rand.New(rand.NewSource(*seed))
	maxScroll := max(0, surface.extent-*vh)

	passes := 0
	active := 0
	start := time.Now()
	for time.Since(start) < *duration {
		if r.Intn(100) < *jumpPct {
			surface.scroll(r.Intn(maxScroll + 1))
		} else {
			next := surface.scrollTop + *step
			if next > maxScroll {
				next = 0 // wrap around and keep scrolling
			}
			surface.scroll(next)
		}
		passes++
		if *swapEvery > 0 && passes%*swapEvery == 0 {
			active = 1 - active
			if err := ctrl.SetRenderer(renderers[active]); err != nil {
				log.Fatal(err)
			}
		}
	}
	elapsed := time.Since(start)

	g := ctrl.Geometry()
	created := renderers[0].created + renderers[1].created
	assigns := renderers[0].assigns + renderers[1].assigns
	fmt.Printf("items=%d cells=%dx%d viewport=%dx%d columns=%d retained<=%d seed=%d\n",
		*items, *cellW, *cellH, *vw, *vh, g.Columns, g.MaxRetained(), *seed)
	fmt.Printf("passes=%d (%.0f passes/s) in %v\n", passes, float64(passes)/elapsed.Seconds(), elapsed)
	fmt.Printf("handles: created=%d assigns=%d live=%d display-list=%d\n",
		created, assigns, ctrl.Live(), surface.handles)
}
