package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/spf13/cobra"
	"github.com/sugawarayuuta/sonnet"

	"github.com/pgavlin/procenv"
)

type platformDescription struct {
	Arch      string `json:"arch"`
	Family    string `json:"family"`
	OS        string `json:"os"`
	DLLPrefix string `json:"dllPrefix,omitempty"`
	DLLSuffix string `json:"dllSuffix,omitempty"`
	EXESuffix string `json:"exeSuffix,omitempty"`
	Hostname  string `json:"hostname,omitempty"`
	Kernel    string `json:"kernel,omitempty"`
	CPUs      int    `json:"cpus,omitempty"`
	Memory    string `json:"memory,omitempty"`
	Uptime    string `json:"uptime,omitempty"`
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print platform constants and host facts",
	Long: `Print the build target's platform constants (architecture, OS family,
shared-library and executable naming) along with facts about the host.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		p := procenv.HostPlatform()
		desc := platformDescription{
			Arch:      p.Arch,
			Family:    p.Family,
			OS:        p.OS,
			DLLPrefix: p.DLLPrefix,
			DLLSuffix: p.DLLSuffix,
			EXESuffix: p.EXESuffix,
		}

		if info, err := host.Info(); err == nil {
			desc.Hostname = info.Hostname
			desc.Kernel = info.KernelVersion
			desc.Uptime = humanize.RelTime(time.Now().Add(-time.Duration(info.Uptime)*time.Second), time.Now(), "", "")
		}
		const logical = true
		if n, err := cpu.Counts(logical); err == nil {
			desc.CPUs = n
		}
		if stats, err := mem.VirtualMemory(); err == nil {
			desc.Memory = humanize.IBytes(stats.Total)
		}

		if outputJSON {
			enc := sonnet.NewEncoder(os.Stdout)
			enc.SetIndent("", "    ")
			return enc.Encode(desc)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 2, 1, ' ', 0)
		fmt.Fprintf(w, "arch\t%s\n", desc.Arch)
		fmt.Fprintf(w, "family\t%s\n", desc.Family)
		fmt.Fprintf(w, "os\t%s\n", desc.OS)
		fmt.Fprintf(w, "dll\t%s*%s\n", desc.DLLPrefix, desc.DLLSuffix)
		if desc.EXESuffix != "" {
			fmt.Fprintf(w, "exe\t*%s\n", desc.EXESuffix)
		}
		if desc.Hostname != "" {
			fmt.Fprintf(w, "hostname\t%s\n", desc.Hostname)
		}
		if desc.Kernel != "" {
			fmt.Fprintf(w, "kernel\t%s\n", desc.Kernel)
		}
		if desc.CPUs != 0 {
			fmt.Fprintf(w, "cpus\t%d\n", desc.CPUs)
		}
		if desc.Memory != "" {
			fmt.Fprintf(w, "memory\t%s\n", desc.Memory)
		}
		if desc.Uptime != "" {
			fmt.Fprintf(w, "uptime\t%s\n", desc.Uptime)
		}
		return w.Flush()
	},
}
