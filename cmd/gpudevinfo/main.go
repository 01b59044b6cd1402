// Command gpudevinfo lists the GPU adapters visible to gpudev and
// optionally opens a device on the selected one.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gpudev"
	"github.com/gogpu/gpudev/backend"

	// Register drivers.
	_ "github.com/gogpu/gpudev/backend/null"
	_ "github.com/gogpu/gpudev/backend/vulkan"
	_ "github.com/gogpu/gpudev/backend/webgpu"
)

func main() {
	var (
		driver  = flag.String("driver", "", "restrict to one driver (vulkan, webgpu, null)")
		request = flag.Bool("request", false, "open a device on the selected adapter")
		verbose = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		gpudev.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	instance := backend.NewInstance()
	defer instance.Close()

	adapters := enumerate(instance, *driver)
	if len(adapters) == 0 {
		log.Fatal("no adapters found")
	}

	for i, a := range adapters {
		printAdapter(i, a)
	}

	if *request {
		requestDevice(adapters[0])
	}

	for _, a := range adapters {
		a.Release()
	}
}

func enumerate(instance *backend.Instance, driver string) []*gpudev.Adapter {
	if driver == "" {
		return instance.EnumerateAdapters()
	}

	d := backend.Get(driver)
	if d == nil {
		log.Fatalf("driver %q not registered (available: %v)", driver, backend.Available())
	}
	adapters, err := d.Enumerate()
	if err != nil {
		log.Fatalf("driver %q enumeration failed: %v", driver, err)
	}
	return adapters
}

func printAdapter(i int, a *gpudev.Adapter) {
	props := a.Properties()
	fmt.Printf("Adapter %d: %s\n", i, props.Name)
	fmt.Printf("  Backend:  %s\n", props.BackendType)
	fmt.Printf("  Type:     %s\n", props.AdapterType)
	if props.DriverDescription != "" {
		fmt.Printf("  Driver:   %s\n", props.DriverDescription)
	}
	if props.VendorID != 0 || props.DeviceID != 0 {
		fmt.Printf("  IDs:      vendor=0x%04x device=0x%04x\n", props.VendorID, props.DeviceID)
	}
	fmt.Printf("  Fallback: %v\n", a.Fallback())

	if features := a.Features(); len(features) > 0 {
		fmt.Println("  Features:")
		for _, f := range features {
			fmt.Printf("    %s\n", f)
		}
	}

	limits := a.Limits()
	fmt.Println("  Limits:")
	fmt.Printf("    max texture 2D:   %d\n", limits.MaxTextureDimension2D)
	fmt.Printf("    max buffer size:  %d\n", limits.MaxBufferSize)
	fmt.Printf("    max bind groups:  %d\n", limits.MaxBindGroups)
}

func requestDevice(a *gpudev.Adapter) {
	device, err := a.RequestDevice(&gpudev.DeviceDescriptor{Label: "gpudevinfo"})
	if err != nil {
		log.Fatalf("device request failed: %v", err)
	}
	defer device.Release()

	fmt.Printf("\nDevice opened on %s (%s)\n", a.Properties().Name, device.Backend())
}
