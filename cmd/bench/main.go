package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/i5heu/GoRingBuf/internal/deque"
	"github.com/i5heu/GoRingBuf/internal/testbench"
	"github.com/i5heu/GoRingBuf/pkg/config"
	"github.com/i5heu/GoRingBuf/pkg/ringbuf"
	"github.com/i5heu/GoRingBuf/pkg/sliceq"
)

// Compile-time enforcement that every benched implementation carries the
// full deque method set.
var (
	_ deque.DequeValidationInterface[int] = (*ringbuf.RingBuf[int])(nil)
	_ deque.DequeValidationInterface[int] = (*sliceq.SliceQueue[int])(nil)
)

// benchDequeInterface is the method set every benched implementation must
// expose, with int elements.
type benchDequeInterface = interface {
	PushBack(int) error
	PushFront(int) error
	PopBack() (int, bool)
	PopFront() (int, bool)
	Front() (int, bool)
	Back() (int, bool)
	Len() int
	Cap() int
	IsEmpty() bool
	IsFull() bool
}

// BenchmarkResult holds results for one test run.
type BenchmarkResult struct {
	Implementation string  `json:"implementation"`
	Workload       string  `json:"workload"`
	Capacity       int     `json:"capacity"`
	NumPushed      int64   `json:"num_pushed"`
	NumPopped      int64   `json:"num_popped"`
	TestDuration   string  `json:"test_duration"`      // e.g. "5s"
	ActualElapsed  string  `json:"actual_elapsed"`     // measured time
	Throughput     float64 `json:"throughput_ops_sec"` // pushes + pops per second
	Timestamp      int64   `json:"timestamp"`
	GoVersion      string  `json:"go_version"`
}

// SystemInfo holds system information.
type SystemInfo struct {
	NumCPU      int     `json:"num_cpu"`
	CPUModel    string  `json:"cpu_model,omitempty"`
	CPUSpeedMHz float64 `json:"cpu_speed_mhz,omitempty"`
	GOARCH      string  `json:"go_arch"`
	TotalMemory uint64  `json:"total_memory_bytes,omitempty"`
}

// FullReport represents a complete bench session.
type FullReport struct {
	SessionTime string            `json:"session_time"`
	SystemInfo  SystemInfo        `json:"system_info"`
	Benchmarks  []BenchmarkResult `json:"benchmarks"`
}

// Implementation represents a deque implementation under bench.
type Implementation[Q benchDequeInterface] struct {
	name        string
	description string
	pkgName     string
	features    []string
	newDeque    func(capacity int) Q
}

// getImplementations enumerates the benched deque implementations. The
// ring buffer is the product; the slice queue is the naive baseline it is
// measured against.
func getImplementations() []Implementation[benchDequeInterface] {
	return []Implementation[benchDequeInterface]{
		{
			name:        "RingBuf",
			pkgName:     "ringbuf",
			description: "Fixed-capacity ring buffer with O(1) push/pop at both ends.",
			features:    []string{"Deque", "FIFO", "LIFO", "O(1)-Both-Ends", "Allocation-Stable"},
			newDeque: func(capacity int) benchDequeInterface {
				return ringbuf.New[int](capacity)
			},
		},
		{
			name:        "SliceQueue",
			pkgName:     "sliceq",
			description: "Naive bounded deque over a plain slice; front operations shift all elements.",
			features:    []string{"Deque", "FIFO", "LIFO", "Baseline"},
			newDeque: func(capacity int) benchDequeInterface {
				return sliceq.New[int](capacity)
			},
		},
	}
}

// outputMarkdownTable loads the JSON file and outputs a Markdown table.
func outputMarkdownTable(jsonFile string) {
	data, err := os.ReadFile(jsonFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading JSON file %q: %v\n", jsonFile, err)
		os.Exit(1)
	}
	var sessions []FullReport
	if err := json.Unmarshal(data, &sessions); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshalling JSON: %v\n", err)
		os.Exit(1)
	}
	if len(sessions) == 0 {
		fmt.Fprintln(os.Stderr, "No sessions found in JSON.")
		os.Exit(1)
	}
	// Use the last session for the table.
	lastSession := sessions[len(sessions)-1]
	// Build a map of implementation meta info.
	implMetaMap := make(map[string]Implementation[benchDequeInterface])
	for _, impl := range getImplementations() {
		implMetaMap[impl.name] = impl
	}
	// Build table rows.
	type tableRow struct {
		implementation string
		pkgName        string
		workload       string
		capacity       int
		features       string
		throughput     float64
	}
	var rows []tableRow
	for _, bench := range lastSession.Benchmarks {
		meta, ok := implMetaMap[bench.Implementation]
		var pkgName, features string
		if ok {
			pkgName = meta.pkgName
			features = strings.Join(meta.features, ", ")
		}
		rows = append(rows, tableRow{
			implementation: bench.Implementation,
			pkgName:        pkgName,
			workload:       bench.Workload,
			capacity:       bench.Capacity,
			features:       features,
			throughput:     bench.Throughput,
		})
	}
	// Sort rows by throughput descending.
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].throughput > rows[j].throughput
	})
	fmt.Println("## Last Session Benchmark Summary")
	fmt.Println()
	fmt.Println("| Implementation | Package   | Workload | Capacity | Features                                  | Throughput (ops/sec) |")
	fmt.Println("|----------------|-----------|----------|----------|-------------------------------------------|----------------------|")
	for _, r := range rows {
		fmt.Printf("| %-14s | %-9s | %-8s | %8d | %-41s | %20.0f |\n",
			r.implementation, r.pkgName, r.workload, r.capacity, r.features, r.throughput)
	}
}

// gatherSystemInfo collects basic CPU and memory details.
func gatherSystemInfo() SystemInfo {
	numCPU := runtime.NumCPU()
	goArch := runtime.GOARCH

	var cpuModel string
	var cpuSpeed float64
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		cpuModel = infos[0].ModelName
		cpuSpeed = infos[0].Mhz
	}

	var totalMemory uint64
	if vm, err := mem.VirtualMemory(); err == nil {
		totalMemory = vm.Total
	}

	return SystemInfo{
		NumCPU:      numCPU,
		CPUModel:    cpuModel,
		CPUSpeedMHz: cpuSpeed,
		GOARCH:      goArch,
		TotalMemory: totalMemory,
	}
}

func main() {
	// Flags.
	configPath := flag.String("config", "", "Path to a YAML bench plan; defaults are used when empty")
	jsonExport := flag.Bool("json", false, "Export results as JSON to test-results.json")
	markdownTable := flag.Bool("markdown-table", false, "Output markdown table from test-results.json and exit")
	jsonFileForMarkdown := flag.String("jsonfile", "test-results.json", "Path to JSON file for markdown table")
	progressFlag := flag.Bool("progress", false, "Display a progress bar with ETA")
	flag.Parse()

	if *markdownTable {
		outputMarkdownTable(*jsonFileForMarkdown)
		return
	}

	plan := config.DefaultPlan()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		plan = loaded
	}
	testDuration, err := plan.TestDuration()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	// Calculate total number of tests for progress tracking.
	impls := getImplementations()
	totalTests := len(plan.Workloads) * len(plan.Capacities) * plan.Iterations * len(impls)

	var bar *progressbar.ProgressBar
	if *progressFlag {
		bar = progressbar.NewOptions(totalTests,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("bench"),
			progressbar.OptionShowCount(),
			progressbar.OptionShowElapsedTimeOnFinish(),
		)
	}

	sysInfo := gatherSystemInfo()

	var results []BenchmarkResult

	// Loop over each workload and capacity.
	for _, workload := range plan.Workloads {
		fmt.Printf("\n=============================\n")
		fmt.Printf("Workload: %s\n", workload)
		fmt.Printf("=============================\n")

		for _, capacity := range plan.Capacities {
			fmt.Printf("  [Capacity: %d]\n", capacity)
			for iteration := 1; iteration <= plan.Iterations; iteration++ {
				fmt.Printf("    iteration %d/%d\n", iteration, plan.Iterations)
				// For each iteration, run each deque implementation.
				for _, impl := range impls {
					runtime.GC()
					q := impl.newDeque(capacity)
					cfg := testbench.Config{
						Workload: workload,
						Capacity: capacity,
					}

					pushed, popped, actualTime := testbench.RunTimedTest[int](
						q,
						cfg,
						testDuration,
						func(i int) int { return i },
					)
					throughput := float64(pushed+popped) / actualTime.Seconds()
					timestamp := time.Now().Unix()

					if *progressFlag {
						fmt.Fprintf(os.Stderr, "\r")
					}

					// Print test result to stdout.
					fmt.Printf("    %s => pushed=%d, popped=%d, throughput=%.0f ops/s, took=%v\n",
						impl.name, pushed, popped, throughput, actualTime)

					if bar != nil {
						bar.Add(1)
					}

					result := BenchmarkResult{
						Implementation: impl.name,
						Workload:       workload,
						Capacity:       capacity,
						NumPushed:      pushed,
						NumPopped:      popped,
						TestDuration:   testDuration.String(),
						ActualElapsed:  actualTime.String(),
						Throughput:     throughput,
						Timestamp:      timestamp,
						GoVersion:      runtime.Version(),
					}
					results = append(results, result)
				}
			}
		}
	}

	// After all tests, print a newline so the progress bar line is not overwritten.
	if bar != nil {
		fmt.Fprintln(os.Stderr)
	}

	session := FullReport{
		SessionTime: time.Now().Format(time.RFC3339),
		SystemInfo:  sysInfo,
		Benchmarks:  results,
	}

	// If JSON export is requested, append the new session to test-results.json.
	if *jsonExport {
		const filename = "test-results.json"
		var previous []FullReport
		if _, err := os.Stat(filename); err == nil {
			data, err := os.ReadFile(filename)
			if err == nil && len(data) > 0 {
				json.Unmarshal(data, &previous)
			}
		}
		updated := append(previous, session)
		data, err := json.MarshalIndent(updated, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error marshalling JSON:", err)
			os.Exit(1)
		}
		if err = os.WriteFile(filename, data, 0644); err != nil {
			fmt.Fprintln(os.Stderr, "Error writing JSON file:", err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote results to %s\n", filename)
	}
}
